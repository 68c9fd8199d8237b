package engine

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
)

// Naming styles a FileRule may require of a file's base name.
const (
	StyleUpperCamel = "upper-camel"
	StyleLowerCamel = "lower-camel"
	StyleSnake      = "snake"
	StyleKebab      = "kebab"
)

var (
	snakeRe = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)
	kebabRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

func validStyle(style string) bool {
	switch style {
	case StyleUpperCamel, StyleLowerCamel, StyleSnake, StyleKebab:
		return true
	}
	return false
}

// matchesStyle reports whether the file name, without its extension, follows
// style.
func matchesStyle(style, fileName string) bool {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	switch style {
	case StyleUpperCamel:
		return isCamel(base, true)
	case StyleLowerCamel:
		return isCamel(base, false)
	case StyleSnake:
		return snakeRe.MatchString(base)
	case StyleKebab:
		return kebabRe.MatchString(base)
	}
	return false
}

// isCamel splits name into CamelCase words and requires every word to be
// alphanumeric, starting with an upper-case letter except possibly the first.
func isCamel(name string, upperFirst bool) bool {
	words := camelcase.Split(name)
	if len(words) == 0 {
		return false
	}
	for i, w := range words {
		for _, r := range w {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return false
			}
		}
		first := []rune(w)[0]
		if unicode.IsDigit(first) {
			if i == 0 {
				return false
			}
			continue
		}
		if i == 0 && !upperFirst {
			if !unicode.IsLower(first) {
				return false
			}
			continue
		}
		if !unicode.IsUpper(first) {
			return false
		}
	}
	return true
}
