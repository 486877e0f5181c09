// File: pkg/flatten/text.go
package flatten

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// ErrNotText is returned when a file's content is not valid UTF-8.
var ErrNotText = errors.New("content is not valid UTF-8 text")

// readText reads the whole file at path and returns it as text.
func readText(fs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("error decoding file %s: %w", path, ErrNotText)
	}
	return string(data), nil
}

// Collapse replaces every run of whitespace with a single space and trims
// the result. Whitespace is the ECMAScript set: the BOM counts, U+0085 does not.
func Collapse(s string) string {
	return strings.Join(strings.FieldsFunc(s, isSpace), " ")
}

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}
