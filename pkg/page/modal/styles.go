package modal

import "github.com/charmbracelet/lipgloss"

// Palette shared with the page view.
var (
	Primary      = lipgloss.Color("212")
	Error        = lipgloss.Color("196")
	Warning      = lipgloss.Color("214")
	Info         = lipgloss.Color("45")
	Muted        = lipgloss.Color("241")
	BgSecondary  = lipgloss.Color("235")
	BorderNormal = lipgloss.Color("240")
)

var (
	fgNormal = lipgloss.Color("252")
	fgBright = lipgloss.Color("255")
	bgRow    = lipgloss.Color("237")
	bgButton = lipgloss.Color("238")
	bgHover  = lipgloss.Color("245")
)

var buttonBase = lipgloss.NewStyle().Padding(0, 2).Foreground(fgBright)

// Buttons render as solid blocks; focus wins over hover.
var (
	Button              = buttonBase.Foreground(fgNormal).Background(bgButton)
	ButtonHover         = buttonBase.Background(bgHover)
	ButtonFocused       = buttonBase.Background(Primary).Bold(true)
	ButtonDangerFocused = buttonBase.Background(Error).Bold(true)
)

var (
	ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(fgBright)
	MutedText  = lipgloss.NewStyle().Foreground(Muted)
	ErrorText  = lipgloss.NewStyle().Foreground(Error)
	Body       = lipgloss.NewStyle()
	HintText   = MutedText.Italic(true)
)

// Input boxes change border color with focus and validity.
var (
	InputLabel        = lipgloss.NewStyle().Foreground(fgNormal)
	InputLabelFocused = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	InputBox = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(BorderNormal).
			Padding(0, 1)
	InputBoxFocused = InputBox.BorderForeground(Primary)
	InputBoxInvalid = InputBox.BorderForeground(Error)
)

// List rows: the selected tier keeps a row background, the row under the
// cursor is also bold while the list has focus.
var (
	ListItemNormal   = lipgloss.NewStyle().Foreground(fgNormal)
	ListItemSelected = lipgloss.NewStyle().Foreground(fgBright).Background(bgRow)
	ListItemFocused  = ListItemSelected.Bold(true)
	ListCursor       = lipgloss.NewStyle().Foreground(Primary).Bold(true)
)

// Variant selects the border color of a modal.
type Variant int

const (
	VariantDefault Variant = iota
	VariantDanger
	VariantWarning
	VariantInfo
)

func (v Variant) borderColor() lipgloss.Color {
	switch v {
	case VariantDanger:
		return Error
	case VariantWarning:
		return Warning
	case VariantInfo:
		return Info
	}
	return Primary
}
