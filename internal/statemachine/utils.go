package statemachine

// splitKeyword returns the leading run of ASCII letters and digits and the rest of the
// input, separators included. name is empty when input does not start with one.
func splitKeyword(input string) (name, args string) {
	i := 0
	for i < len(input) && isAlnum(input[i]) {
		i++
	}
	return input[:i], input[i:]
}

func isAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
