// Package style defines the terminal styling for instl's diagnostics.
//
// Styles use semantic names and adaptive colors loaded from an embedded
// YAML document, so light and dark terminal themes both get readable
// output. Styling is applied only when stderr is a terminal; piped or
// captured output stays byte-exact.
package style

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// registry maps semantic names to lipgloss styles
var registry map[string]lipgloss.Style

func init() {
	if err := loadStyles(stylesYAML); err != nil {
		panic(fmt.Sprintf("failed to load styles: %v", err))
	}
}

// loadStyles parses the YAML style configuration and fills the registry
func loadStyles(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse styles.yaml: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor)
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{
			Light: def.Light,
			Dark:  def.Dark,
		}
	}

	registry = make(map[string]lipgloss.Style)
	for name, def := range config.Styles {
		registry[name] = buildStyle(def, colors)
	}

	return nil
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Foreground != "" {
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
	}

	return style
}

// GetStyle returns the style registered under name, or a zero style
// when the name is unknown.
func GetStyle(name string) lipgloss.Style {
	return registry[name]
}

// FatalPrefix returns the prefix of the fatal diagnostic line, styled
// only when stderr can render it.
func FatalPrefix() string {
	const prefix = "fatal:"
	if !stderrSupportsColor() {
		return prefix
	}
	return GetStyle("Fatal").Render(prefix)
}

// stderrSupportsColor reports whether styled output is safe on stderr.
func stderrSupportsColor() bool {
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}
