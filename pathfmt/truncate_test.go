package pathfmt

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmartTruncate(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		maxWidth int
		expected string
	}{
		{
			name:     "equal to max width",
			path:     "abcdef",
			maxWidth: 6,
			expected: "abcdef",
		},
		{
			name:     "shorter than max width",
			path:     `c:\user\documents\projects`,
			maxWidth: 30,
			expected: `c:\user\documents\projects`,
		},
		{
			name:     "empty path",
			path:     "",
			maxWidth: 6,
			expected: "",
		},
		{
			name:     "keeps last folder",
			path:     `c:\user\documents\projects`,
			maxWidth: 20,
			expected: `c:\...\projects\`,
		},
		{
			name:     "trailing separator",
			path:     `c:\user\documents\projects\`,
			maxWidth: 26,
			expected: `c:\...\projects\`,
		},
		{
			name:     "folder name too long",
			path:     `c:\thisisaverylongname`,
			maxWidth: 10,
			expected: `c:\...ame\`,
		},
		{
			name:     "no separator",
			path:     "thisisaverylongname",
			maxWidth: 8,
			expected: `t...ame\`,
		},
		{
			name:     "unc path drops server root",
			path:     `\\server\share\folder\file.txt`,
			maxWidth: 20,
			expected: `...\file.txt\`,
		},
		{
			name:     "keeps several trailing segments",
			path:     `c:\a\very\long\path\to\src\pkg`,
			maxWidth: 22,
			expected: `c:\...\to\src\pkg\`,
		},
		{
			name:     "root dropped when it leaves no room",
			path:     `c:\x\y\a`,
			maxWidth: 6,
			expected: `...\a\`,
		},
		{
			name:     "unicode segments counted by character",
			path:     `c:\文档\非常非常非常长的文件名称.txt`,
			maxWidth: 10,
			expected: `c:\...txt\`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := SmartTruncate(tt.path, tt.maxWidth)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, output)
		})
	}
}

func TestSmartTruncateExactWidthWhenCuttingSegment(t *testing.T) {
	output, err := SmartTruncate(`c:\thisisaverylongname`, 10)
	require.NoError(t, err)
	assert.Len(t, output, 10)

	tr, err := NewTruncator(16, WithSeparator('/'))
	require.NoError(t, err)
	output, err = tr.Truncate("/home/averyveryverylongfilename.txt")
	require.NoError(t, err)
	assert.Equal(t, "/av...ename.txt/", output)
	assert.Len(t, output, 16)
}

func TestSmartTruncateRejectsSmallWidth(t *testing.T) {
	for _, width := range []int{5, 0, -4} {
		_, err := SmartTruncate("", width)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOutOfRange))

		var argErr *ArgumentError
		require.True(t, errors.As(err, &argErr))
		assert.Equal(t, "maxWidth", argErr.Param)
		assert.Equal(t, width, argErr.Value)
	}

	_, err := SmartTruncate(`c:\user\documents\projects`, 5)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestNewTruncatorRejectsBadSeparator(t *testing.T) {
	for _, sep := range []rune{0, '.', ' ', '\n'} {
		_, err := NewTruncator(10, WithSeparator(sep))
		assert.ErrorIs(t, err, ErrInvalidArgument, "separator %q", sep)
	}
}

func TestTruncateAll(t *testing.T) {
	tr, err := NewTruncator(20)
	require.NoError(t, err)

	_, err = tr.TruncateAll(nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "paths")

	out, err := tr.TruncateAll([]string{`c:\user\documents\projects`, "short"})
	require.NoError(t, err)
	assert.Equal(t, []string{`c:\...\projects\`, "short"}, out)

	out, err = tr.TruncateAll([]string{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestTruncateZeroValueFails(t *testing.T) {
	var tr Truncator
	_, err := tr.Truncate("anything")
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSmartTruncateBounds(t *testing.T) {
	paths := []string{
		`c:\user\documents\projects`,
		`c:\user\documents\projects\`,
		`c:\thisisaverylongname`,
		`\\server\share\some\deeply\nested\folder\structure\file.nupkg`,
		`\rooted\path\without\drive`,
		`relative\path\to\a\file.txt`,
		`c:\\\\\\\\\\\\`,
		`\\\\\\\\\\\\\\`,
		`d:packages\NuGet.Core.1.0.0\lib\net40\NuGet.Core.dll`,
		strings.Repeat("x", 40),
	}

	for _, p := range paths {
		length := utf8.RuneCountInString(p)
		for width := MinWidth; width <= length+2; width++ {
			output, err := SmartTruncate(p, width)
			require.NoError(t, err)

			if length <= width {
				assert.Equal(t, p, output)
				continue
			}
			n := utf8.RuneCountInString(output)
			assert.LessOrEqual(t, n, width, "%q at width %d gave %q", p, width, output)
			assert.Less(t, n, length, "%q at width %d gave %q", p, width, output)
			assert.Contains(t, output, ellipsis)
		}
	}
}

func TestSmartTruncateInvalidUTF8(t *testing.T) {
	fits := "c:\\data\\\xffreport.txt"
	output, err := SmartTruncate(fits, 30)
	require.NoError(t, err)
	assert.Equal(t, fits, output)

	output, err = SmartTruncate("c:\\folder\\sub\\\xffname", 16)
	require.NoError(t, err)
	assert.Equal(t, "c:\\...\\\uFFFDname\\", output)
	assert.True(t, utf8.ValidString(output))
}
