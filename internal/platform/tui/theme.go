package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all configurable visual styles for the draw screen.
type Theme struct {
	// Grid cells
	Marked lipgloss.Style
	Empty  lipgloss.Style
	Axis   lipgloss.Style

	// Panels
	PanelBorder lipgloss.Style
	PanelTitle  lipgloss.Style
	PanelStats  lipgloss.Style

	// Form
	Title        lipgloss.Style
	Label        lipgloss.Style
	LabelFocused lipgloss.Style

	// Status line and help
	StatusOK  lipgloss.Style
	StatusErr lipgloss.Style
	Help      lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Marked: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // Bright cyan
		Empty:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // Dark gray
		Axis:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		PanelBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		PanelTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		PanelStats: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Title:        lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		LabelFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),

		StatusOK:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		StatusErr: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// NeonTheme returns a neon-style theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Marked = lipgloss.NewStyle().Foreground(lipgloss.Color("199"))      // Neon pink
	theme.Title = theme.Title.Foreground(lipgloss.Color("87"))                // Neon cyan
	theme.PanelTitle = theme.PanelTitle.Foreground(lipgloss.Color("118"))     // Neon green
	theme.LabelFocused = theme.LabelFocused.Foreground(lipgloss.Color("227")) // Neon yellow
	return theme
}

// PastelTheme returns a softer pastel theme.
func PastelTheme() Theme {
	theme := DefaultTheme()
	theme.Marked = lipgloss.NewStyle().Foreground(lipgloss.Color("218"))      // Pastel pink
	theme.Title = theme.Title.Foreground(lipgloss.Color("123"))               // Pastel cyan
	theme.PanelTitle = theme.PanelTitle.Foreground(lipgloss.Color("157"))     // Pastel green
	theme.LabelFocused = theme.LabelFocused.Foreground(lipgloss.Color("229")) // Pastel yellow
	return theme
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Marked = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	theme.Title = theme.Title.Foreground(lipgloss.Color("250"))
	theme.PanelTitle = theme.PanelTitle.Foreground(lipgloss.Color("250"))
	theme.LabelFocused = theme.LabelFocused.Foreground(lipgloss.Color("255"))
	theme.StatusOK = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.StatusErr = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	return theme
}

// ThemeByName returns the named theme, falling back to the default one.
func ThemeByName(name string) Theme {
	switch name {
	case "neon":
		return NeonTheme()
	case "pastel":
		return PastelTheme()
	case "mono":
		return MonochromeTheme()
	}
	return DefaultTheme()
}
