// Package testutils provides deterministic random sources and helpers for dices testing.
package testutils

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ScriptedSource replays a fixed sequence of draws. Each IntN call consumes the next
// value; values outside [0, n) are folded into range. Once the script is exhausted it
// starts over.
type ScriptedSource struct {
	values []int
	pos    int
	calls  []int
}

// NewScriptedSource returns a source yielding the given zero-based draws.
func NewScriptedSource(values ...int) *ScriptedSource {
	return &ScriptedSource{values: values}
}

// Faces returns a source whose draws come out as the given faces with the direct
// sampler, i.e. a face f is scripted as f-1.
func Faces(faces ...int) *ScriptedSource {
	values := make([]int, len(faces))
	for i, f := range faces {
		values[i] = f - 1
	}
	return NewScriptedSource(values...)
}

// IntN returns the next scripted value in [0, n).
func (s *ScriptedSource) IntN(n int) int {
	s.calls = append(s.calls, n)
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return ((v % n) + n) % n
}

// Calls returns the n argument of every IntN call so far.
func (s *ScriptedSource) Calls() []int {
	return s.calls
}

// Consumed returns how many draws were taken.
func (s *ScriptedSource) Consumed() int {
	return s.pos
}

var (
	idCounter uint64
	idMutex   sync.Mutex
)

// GenerateSessionID returns a UUID that is deterministic in test mode and random otherwise.
// In test mode IDs look like 00000001-0000-4000-8000-000000000001.
func GenerateSessionID(testMode bool) string {
	if !testMode {
		return uuid.NewString()
	}

	idMutex.Lock()
	defer idMutex.Unlock()

	idCounter++
	return fmt.Sprintf("%08x-0000-4000-8000-%012x", idCounter, idCounter)
}

// ResetTestCounters resets the deterministic counters.
func ResetTestCounters() {
	idMutex.Lock()
	defer idMutex.Unlock()
	idCounter = 0
}
