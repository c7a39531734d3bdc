package pathfmt

import "unicode"

const (
	// MinWidth is the smallest display width a path can be truncated to
	MinWidth = 6
	// DefaultSeparator is the segment separator used by SmartTruncate
	DefaultSeparator = '\\'

	ellipsis = "..."
)

// Truncator shortens paths to a fixed display width.
// The zero value is not usable; build one with NewTruncator.
type Truncator struct {
	MaxWidth  int
	Separator rune
}

// Option configures a Truncator
type Option func(*Truncator)

// WithSeparator sets the segment separator, e.g. '/' for POSIX paths
func WithSeparator(sep rune) Option {
	return func(t *Truncator) {
		t.Separator = sep
	}
}

// NewTruncator creates a Truncator for maxWidth characters
func NewTruncator(maxWidth int, opts ...Option) (*Truncator, error) {
	t := &Truncator{
		MaxWidth:  maxWidth,
		Separator: DefaultSeparator,
	}
	for _, opt := range opts {
		opt(t)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// SmartTruncate shortens path to at most maxWidth characters using the default separator.
// A path that already fits is returned unchanged; otherwise the result is
// root + "..." + trailing segments, and is exactly maxWidth long when the final
// segment itself has to be cut.
//
// Widths count runes. Input that is not valid UTF-8 is decoded rune by rune, so when
// such a path is shortened each invalid byte in the kept parts comes back as U+FFFD.
// Paths that already fit are returned byte for byte.
func SmartTruncate(path string, maxWidth int) (string, error) {
	t, err := NewTruncator(maxWidth)
	if err != nil {
		return "", err
	}
	return t.Truncate(path)
}

func (t *Truncator) validate() error {
	if t.MaxWidth < MinWidth {
		return outOfRange("maxWidth", "must be at least 6", t.MaxWidth)
	}
	sep := t.Separator
	if sep == '.' || sep == unicode.ReplacementChar || !unicode.IsPrint(sep) || unicode.IsSpace(sep) {
		return invalidArgument("separator", "must be a printable character other than '.'", string(t.Separator))
	}
	return nil
}

// Truncate shortens a single path
func (t *Truncator) Truncate(path string) (string, error) {
	if err := t.validate(); err != nil {
		return "", err
	}

	chars := []rune(path)
	if len(chars) <= t.MaxWidth {
		return path, nil
	}
	return string(t.shorten(chars)), nil
}

// TruncateAll shortens every path in paths, preserving order.
// A nil slice means no input was supplied and is rejected.
func (t *Truncator) TruncateAll(paths []string) ([]string, error) {
	if paths == nil {
		return nil, invalidArgument("paths", "must not be nil", nil)
	}

	out := make([]string, 0, len(paths))
	for _, p := range paths {
		s, err := t.Truncate(p)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (t *Truncator) shorten(chars []rune) []rune {
	root, rest := splitRoot(chars, t.Separator)
	segments := splitSegments(rest, t.Separator)

	if out, ok := t.keepSegments(root, segments); ok {
		return out
	}
	return t.cutSegment(root, rest, segments)
}

// keepSegments builds root + "..." + sep + segments + sep, taking segments from the end.
// The final segment may fill the width exactly; earlier ones are only added while
// the result stays strictly shorter than MaxWidth.
func (t *Truncator) keepSegments(root []rune, segments [][]rune) ([]rune, bool) {
	if len(segments) == 0 {
		return nil, false
	}

	width := len(root) + len(ellipsis) + 1
	first := len(segments)
	for i := len(segments) - 1; i >= 0; i-- {
		next := width + len(segments[i]) + 1
		if next > t.MaxWidth || (first < len(segments) && next >= t.MaxWidth) {
			break
		}
		width = next
		first = i
	}
	if first == len(segments) {
		return nil, false
	}

	out := make([]rune, 0, width)
	out = append(out, root...)
	out = append(out, []rune(ellipsis)...)
	out = append(out, t.Separator)
	for _, seg := range segments[first:] {
		out = append(out, seg...)
		out = append(out, t.Separator)
	}
	return out, true
}

// cutSegment keeps the head and tail of the final segment around an ellipsis so the
// result is exactly MaxWidth long. The tail gets the larger share.
func (t *Truncator) cutSegment(root, rest []rune, segments [][]rune) []rune {
	room := t.MaxWidth - len(root) - len(ellipsis) - 1
	if room < 1 {
		root = nil
		room = t.MaxWidth - len(ellipsis) - 1
	}

	source := rest
	if trimmed := trimTrailing(rest, t.Separator); len(trimmed) >= room {
		source = trimmed
	}
	if len(segments) > 0 {
		if last := segments[len(segments)-1]; len(last) >= room {
			source = last
		}
	}

	head := room / 4
	tail := room - head

	out := make([]rune, 0, t.MaxWidth)
	out = append(out, root...)
	out = append(out, source[:head]...)
	out = append(out, []rune(ellipsis)...)
	out = append(out, source[len(source)-tail:]...)
	out = append(out, t.Separator)
	return out
}

// splitRoot separates a drive root ("c:\" or "c:") or a single leading separator.
// Longer roots such as \\server\share are treated as ordinary segments.
func splitRoot(chars []rune, sep rune) (root, rest []rune) {
	switch {
	case len(chars) >= 2 && chars[1] == ':' && unicode.IsLetter(chars[0]):
		if len(chars) >= 3 && chars[2] == sep {
			return chars[:3], chars[3:]
		}
		return chars[:2], chars[2:]
	case len(chars) >= 1 && chars[0] == sep && (len(chars) < 2 || chars[1] != sep):
		return chars[:1], chars[1:]
	default:
		return nil, chars
	}
}

func splitSegments(chars []rune, sep rune) [][]rune {
	var segments [][]rune
	start := 0
	for i, r := range chars {
		if r != sep {
			continue
		}
		if i > start {
			segments = append(segments, chars[start:i])
		}
		start = i + 1
	}
	if start < len(chars) {
		segments = append(segments, chars[start:])
	}
	return segments
}

func trimTrailing(chars []rune, sep rune) []rune {
	end := len(chars)
	for end > 0 && chars[end-1] == sep {
		end--
	}
	return chars[:end]
}
