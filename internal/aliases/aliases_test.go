package aliases

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dices/internal/commands"
	"dices/pkg/dicetypes"
)

const sampleAliases = `# This is for adding a command
doom = "dice 2D6"
// These replicate an existing one
roll = dice
rulez = dice
! a movement macro
move = "dice 3D6 -9"
mouv = "move +7"
quit = exit

d20   =   'dice D20'   # trailing comment
`

func TestParseText(t *testing.T) {
	entries, err := ParseText("aliases", []byte(sampleAliases))
	require.NoError(t, err)

	expected := []Entry{
		{Name: "doom", Value: "dice 2D6", Line: 2},
		{Name: "roll", Value: "dice", Line: 4},
		{Name: "rulez", Value: "dice", Line: 5},
		{Name: "move", Value: "dice 3D6 -9", Line: 7},
		{Name: "mouv", Value: "move +7", Line: 8},
		{Name: "quit", Value: "exit", Line: 9},
		{Name: "d20", Value: "dice D20", Line: 11},
	}
	assert.Equal(t, expected, entries)
}

func TestParseText_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing equal", "doom dice"},
		{"missing value", "doom ="},
		{"empty quoted value", `doom = ""`},
		{"unterminated string", `doom = "dice 2D6`},
		{"bad name", "do-om = dice"},
		{"two values", "doom = dice open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseText("aliases", []byte("roll = dice\n"+tt.input+"\n"))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSyntax)
			assert.Contains(t, err.Error(), "aliases:2")
		})
	}
}

func TestClassify(t *testing.T) {
	reg := commands.NewBuiltinRegistry()
	entries, err := ParseText("aliases", []byte(sampleAliases))
	require.NoError(t, err)

	cmds := Classify(entries, reg.Contains)
	expected := []dicetypes.Command{
		dicetypes.NewMacro("doom", "dice 2D6"),
		dicetypes.NewAlias("roll", "dice"),
		dicetypes.NewAlias("rulez", "dice"),
		dicetypes.NewMacro("move", "dice 3D6 -9"),
		dicetypes.NewMacro("mouv", "move +7"),
		dicetypes.NewAlias("quit", "exit"),
		dicetypes.NewMacro("d20", "dice D20"),
	}
	assert.Equal(t, expected, cmds)
}

func TestClassify_EarlierBindingMakesAlias(t *testing.T) {
	cmds := Classify([]Entry{
		{Name: "attack", Value: "dice D20 +4"},
		{Name: "hit", Value: "attack"},
	}, func(string) bool { return false })

	require.Len(t, cmds, 2)
	assert.Equal(t, dicetypes.CommandMacro, cmds[0].Kind)
	assert.Equal(t, dicetypes.NewAlias("hit", "attack"), cmds[1])
}

func TestParse_YAMLAndTOML(t *testing.T) {
	yamlDoc := []byte(`aliases:
  roll: dice
  doom: "dice 2D6"
`)
	tomlDoc := []byte(`[aliases]
roll = "dice"
doom = "dice 2D6"
`)
	expected := []Entry{
		{Name: "doom", Value: "dice 2D6"},
		{Name: "roll", Value: "dice"},
	}

	entries, err := Parse(FormatYAML, "aliases.yaml", yamlDoc)
	require.NoError(t, err)
	assert.Equal(t, expected, entries)

	entries, err = Parse(FormatTOML, "aliases.toml", tomlDoc)
	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}

func TestParse_StructuredErrors(t *testing.T) {
	_, err := Parse(FormatYAML, "a.yaml", []byte("aliases: [1, 2"))
	assert.ErrorIs(t, err, ErrSyntax)

	_, err = Parse(FormatTOML, "a.toml", []byte("[aliases\n"))
	assert.ErrorIs(t, err, ErrSyntax)

	_, err = Parse(FormatYAML, "a.yaml", []byte("aliases:\n  \"two words\": dice\n"))
	assert.ErrorIs(t, err, ErrSyntax)

	_, err = Parse(FormatTOML, "a.toml", []byte("[aliases]\nroll = \"  \"\n"))
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestParse_StructuredMisplacedData(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"yaml top-level binding", FormatYAML, "roll: dice\n"},
		{"yaml unknown section", FormatYAML, "macros:\n  doom: dice 2D6\n"},
		{"toml top-level binding", FormatTOML, "roll = \"dice\"\n"},
		{"toml aliases not a table", FormatTOML, "aliases = 3"},
		{"toml unknown table", FormatTOML, "[macros]\ndoom = \"dice 2D6\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Parse(tt.format, "party", []byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSyntax)
			assert.Nil(t, entries)
		})
	}
}

func TestParse_EmptyStructuredFiles(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(format.String(), func(t *testing.T) {
			entries, err := Parse(format, "empty", nil)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		wantErr  bool
	}{
		{"/home/u/.config/dices/aliases", FormatText, false},
		{"party.aliases", FormatText, false},
		{"party.YAML", FormatYAML, false},
		{"party.yml", FormatYAML, false},
		{"party.toml", FormatTOML, false},
		{"party.json", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f, err := DetectFormat(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestNewRegistry_DefaultsOnly(t *testing.T) {
	reg, err := NewRegistry("", false)
	require.NoError(t, err)

	doom, ok := reg.Get("doom")
	require.True(t, ok)
	assert.Equal(t, dicetypes.NewMacro("doom", "dice 2D6"), doom)

	roll, ok := reg.Get("roll")
	require.True(t, ok)
	assert.Equal(t, dicetypes.NewAlias("roll", "dice"), roll)

	assert.Len(t, reg.Names(), 8)
}

func TestNewRegistry_WithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases")
	require.NoError(t, os.WriteFile(path, []byte(sampleAliases), 0600))

	reg, err := NewRegistry(path, true)
	require.NoError(t, err)

	quit, ok := reg.Get("quit")
	require.True(t, ok)
	assert.Equal(t, dicetypes.CommandAlias, quit.Kind)

	mouv, ok := reg.Get("mouv")
	require.True(t, ok)
	assert.Equal(t, dicetypes.CommandMacro, mouv.Kind)
}

func TestNewRegistry_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope")

	reg, err := NewRegistry(path, false)
	require.NoError(t, err)
	assert.True(t, reg.Contains("doom"))

	_, err = NewRegistry(path, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewRegistry_SyntaxErrorIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.toml")
	require.NoError(t, os.WriteFile(path, []byte("aliases = 3"), 0600))

	_, err := NewRegistry(path, true)
	assert.ErrorIs(t, err, ErrSyntax)
}
