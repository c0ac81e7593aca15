package prettyprint

import "github.com/muesli/termenv"

var (
	DEFAULT_DARKMODE_PRINT_COLORS = PrettyPrintColors{
		ControlKeyword:    GetFullColorSequence(termenv.ANSIBrightMagenta, false),
		OtherKeyword:      GetFullColorSequence(termenv.ANSIBlue, false),
		StringLiteral:     GetFullColorSequence(termenv.ANSI256Color(209), false),
		RegexLiteral:      GetFullColorSequence(termenv.ANSIRed, false),
		IdentifierLiteral: GetFullColorSequence(termenv.ANSIBrightCyan, false),
		NumberLiteral:     GetFullColorSequence(termenv.ANSIBrightGreen, false),
		AtomLiteral:       GetFullColorSequence(termenv.ANSIBlue, false),
		Operator:          GetFullColorSequence(termenv.ANSIWhite, false),
		DiscreteColor:     GetFullColorSequence(termenv.ANSIBrightBlack, false),
		ErrorColor:        GetFullColorSequence(termenv.ANSIRed, false),
	}

	DEFAULT_LIGHTMODE_PRINT_COLORS = PrettyPrintColors{
		ControlKeyword:    GetFullColorSequence(termenv.ANSI256Color(90), false),
		OtherKeyword:      GetFullColorSequence(termenv.ANSI256Color(26), false),
		StringLiteral:     GetFullColorSequence(termenv.ANSI256Color(88), false),
		RegexLiteral:      GetFullColorSequence(termenv.ANSI256Color(1), false),
		IdentifierLiteral: GetFullColorSequence(termenv.ANSI256Color(27), false),
		NumberLiteral:     GetFullColorSequence(termenv.ANSI256Color(28), false),
		AtomLiteral:       GetFullColorSequence(termenv.ANSI256Color(21), false),
		Operator:          GetFullColorSequence(termenv.ANSIBlack, false),
		DiscreteColor:     GetFullColorSequence(termenv.ANSIBrightBlack, false),
		ErrorColor:        GetFullColorSequence(termenv.ANSI256Color(160), false),
	}
)

type PrettyPrintColors struct {
	ControlKeyword, OtherKeyword, StringLiteral, RegexLiteral, IdentifierLiteral, NumberLiteral,
	AtomLiteral, Operator,

	DiscreteColor, ErrorColor []byte
}

type PrettyPrintConfig struct {
	Colorize bool
	Colors   *PrettyPrintColors //defaults to DEFAULT_DARKMODE_PRINT_COLORS
}

func (c PrettyPrintConfig) colors() *PrettyPrintColors {
	if c.Colors == nil {
		return &DEFAULT_DARKMODE_PRINT_COLORS
	}
	return c.Colors
}

func GetFullColorSequence(color termenv.Color, bg bool) []byte {
	var b = []byte(termenv.CSI)
	b = append(b, []byte(color.Sequence(bg))...)
	b = append(b, 'm')
	return b
}

// DefaultColors returns the colors matching the background of the terminal.
func DefaultColors() *PrettyPrintColors {
	if termenv.HasDarkBackground() {
		return &DEFAULT_DARKMODE_PRINT_COLORS
	}
	return &DEFAULT_LIGHTMODE_PRINT_COLORS
}
