package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// lipglossStyle adapts a lipgloss.Style to TextStyle.
type lipglossStyle struct {
	style lipgloss.Style
}

func (l lipglossStyle) Render(text string) string {
	return l.style.Render(text)
}

// ThemeStyleProvider styles output with lipgloss for the terminal profile reported by termenv.
type ThemeStyleProvider struct {
	profile termenv.Profile
	dark    bool
	styles  map[SemanticType]lipgloss.Style
	plain   lipgloss.Style
}

// NewThemeStyleProvider detects the terminal from the environment.
func NewThemeStyleProvider() *ThemeStyleProvider {
	return NewThemeStyleProviderFor(termenv.EnvColorProfile(), termenv.HasDarkBackground())
}

// NewThemeStyleProviderFor builds a provider for an explicit profile and background.
func NewThemeStyleProviderFor(profile termenv.Profile, dark bool) *ThemeStyleProvider {
	r := lipgloss.NewRenderer(os.Stdout)
	r.SetColorProfile(profile)
	r.SetHasDarkBackground(dark)

	accent := lipgloss.Color("33")
	if !dark {
		accent = lipgloss.Color("25")
	}

	return &ThemeStyleProvider{
		profile: profile,
		dark:    dark,
		plain:   r.NewStyle(),
		styles: map[SemanticType]lipgloss.Style{
			SemanticInfo:      r.NewStyle().Foreground(accent),
			SemanticSuccess:   r.NewStyle().Foreground(lipgloss.Color("42")),
			SemanticWarning:   r.NewStyle().Foreground(lipgloss.Color("214")),
			SemanticError:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
			SemanticHighlight: r.NewStyle().Bold(true),
			SemanticTotal:     r.NewStyle().Bold(true).Foreground(accent),
			SemanticRolls:     r.NewStyle().Faint(true),
			SemanticNatural:   r.NewStyle().Foreground(lipgloss.Color("42")),
			SemanticFumble:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		},
	}
}

// GetStyle implements StyleProvider.
func (t *ThemeStyleProvider) GetStyle(semantic string) TextStyle {
	if style, ok := t.styles[SemanticType(semantic)]; ok {
		return lipglossStyle{style: style}
	}
	return lipglossStyle{style: t.plain}
}

// IsAvailable reports whether the terminal renders colors.
func (t *ThemeStyleProvider) IsAvailable() bool {
	return t.profile != termenv.Ascii
}

// GetThemeType implements StyleProvider.
func (t *ThemeStyleProvider) GetThemeType() string {
	if t.dark {
		return "dark"
	}
	return "light"
}
