package pathfmt

import "strings"

// EscapeChar is the PowerShell escape character
const EscapeChar = '`'

// QuoteStyle is the kind of PowerShell string literal produced by EscapePSPath
type QuoteStyle rune

const (
	// SingleQuoted literals are verbatim; nothing but brackets needs escaping
	SingleQuoted QuoteStyle = '\''
	// DoubleQuoted literals expand $, end at " and honour the escape character
	DoubleQuoted QuoteStyle = '"'
)

// SelectQuoteStyle picks the literal form for input.
// Single quotes cannot appear inside a single-quoted literal, so their presence forces
// the double-quoted form.
func SelectQuoteStyle(input string) QuoteStyle {
	if strings.ContainsRune(input, '\'') {
		return DoubleQuoted
	}
	return SingleQuoted
}

// NeedsEscape reports whether r must be prefixed with EscapeChar inside a literal of
// the given style. Brackets are wildcard characters for path parameters and are
// escaped in both styles.
func (s QuoteStyle) NeedsEscape(r rune) bool {
	switch r {
	case '[', ']':
		return true
	case '$', '"', EscapeChar:
		return s == DoubleQuoted
	default:
		return false
	}
}

// Quote escapes input for this style and wraps it in the style's quote character
func (s QuoteStyle) Quote(input string) string {
	var sb strings.Builder
	sb.Grow(len(input) + 2)
	sb.WriteRune(rune(s))
	for _, r := range input {
		if s.NeedsEscape(r) {
			sb.WriteRune(EscapeChar)
		}
		sb.WriteRune(r)
	}
	sb.WriteRune(rune(s))
	return sb.String()
}

// EscapePSPath renders input as a literal PowerShell string token.
// It never fails; the empty string becomes ''.
func EscapePSPath(input string) string {
	return SelectQuoteStyle(input).Quote(input)
}

// JoinPSCommand builds a PowerShell command line: command is written verbatim and each
// argument is escaped with EscapePSPath.
func JoinPSCommand(command string, args ...string) string {
	var sb strings.Builder
	sb.WriteString(command)
	for _, arg := range args {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(EscapePSPath(arg))
	}
	return sb.String()
}
