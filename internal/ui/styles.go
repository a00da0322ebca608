package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - Darcula theme (JetBrains inspired)
var (
	ColorBackground = lipgloss.Color("#2B2B2B")
	ColorSurface    = lipgloss.Color("#3C3F41")
	ColorSurfaceAlt = lipgloss.Color("#313335")
	ColorBorder     = lipgloss.Color("#515151")

	ColorText       = lipgloss.Color("#A9B7C6")
	ColorTextMuted  = lipgloss.Color("#808080")
	ColorTextBright = lipgloss.Color("#FFFFFF")

	ColorOrange = lipgloss.Color("#CC7832")
	ColorGreen  = lipgloss.Color("#6A8759")
	ColorBlue   = lipgloss.Color("#6897BB")
	ColorYellow = lipgloss.Color("#FFC66D")
	ColorPurple = lipgloss.Color("#9876AA")

	ColorRed         = lipgloss.Color("#FF6B68")
	ColorGreenBright = lipgloss.Color("#499C54")
	ColorYellowWarn  = lipgloss.Color("#BBB529")

	ColorSelection = lipgloss.Color("#214283")
)

// Styles contains all the application styles
type Styles struct {
	Header     lipgloss.Style
	Footer     lipgloss.Style
	FooterKey  lipgloss.Style
	FooterDesc lipgloss.Style
	Content    lipgloss.Style

	ListTitle    lipgloss.Style
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style

	DetailTitle lipgloss.Style
	DetailLabel lipgloss.Style
	DetailValue lipgloss.Style
	SecretValue lipgloss.Style

	VersionEnabled   lipgloss.Style
	VersionDisabled  lipgloss.Style
	VersionDestroyed lipgloss.Style
	VersionUnknown   lipgloss.Style

	Input      lipgloss.Style
	InputLabel lipgloss.Style
	Cursor     lipgloss.Style

	StatusInfo  lipgloss.Style
	StatusError lipgloss.Style

	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogDanger lipgloss.Style

	Help    lipgloss.Style
	Spinner lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorYellow).
			Background(ColorSurface).
			Padding(0, 2).
			MarginBottom(1),

		Footer: lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1),

		FooterKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBackground).
			Background(ColorOrange).
			Padding(0, 1),

		FooterDesc: lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorSurfaceAlt).
			Padding(0, 1).
			MarginRight(2),

		Content: lipgloss.NewStyle().
			Padding(0, 2),

		ListTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorOrange).
			MarginBottom(1),

		ListItem: lipgloss.NewStyle().
			Foreground(ColorText).
			PaddingLeft(2),

		ListSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorTextBright).
			Background(ColorSelection).
			PaddingLeft(2),

		DetailTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorYellow).
			MarginBottom(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorBorder),

		DetailLabel: lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Width(18),

		DetailValue: lipgloss.NewStyle().
			Foreground(ColorText),

		SecretValue: lipgloss.NewStyle().
			Foreground(ColorGreen).
			Background(ColorSurfaceAlt).
			Padding(0, 1),

		VersionEnabled: lipgloss.NewStyle().
			Foreground(ColorGreenBright),

		VersionDisabled: lipgloss.NewStyle().
			Foreground(ColorYellowWarn),

		VersionDestroyed: lipgloss.NewStyle().
			Foreground(ColorRed),

		VersionUnknown: lipgloss.NewStyle().
			Foreground(ColorTextMuted),

		Input: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorYellow).
			Padding(0, 1),

		InputLabel: lipgloss.NewStyle().
			Foreground(ColorOrange).
			Bold(true),

		Cursor: lipgloss.NewStyle().
			Foreground(ColorBackground).
			Background(ColorText),

		StatusInfo: lipgloss.NewStyle().
			Foreground(ColorBlue),

		StatusError: lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorYellow).
			MarginBottom(1),

		DialogDanger: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRed).
			MarginBottom(1),

		Help: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2),

		Spinner: lipgloss.NewStyle().
			Foreground(ColorOrange),
	}
}

// VersionStateStyle picks the style for a version state label.
func (s *Styles) VersionStateStyle(state string) lipgloss.Style {
	switch state {
	case "enabled":
		return s.VersionEnabled
	case "disabled":
		return s.VersionDisabled
	case "destroyed":
		return s.VersionDestroyed
	default:
		return s.VersionUnknown
	}
}
