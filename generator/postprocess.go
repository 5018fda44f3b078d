package generator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MaxHooks = 5
	// hooks of this many characters or fewer are dropped
	minHookLength = 5
)

// markerSpace also covers \v, NBSP and the other Unicode spaces a model may
// put after a list marker.
const markerSpace = `[\s\v\p{Z}\x{FEFF}]*`

var (
	enumeratorRe = regexp.MustCompile(`^\d+[.)]` + markerSpace)
	bulletRe     = regexp.MustCompile(`^[-•*]` + markerSpace)
)

// ParseHooks turns the model's numbered or bulleted list into at most MaxHooks
// cleaned lines, keeping the model's order. It never fails; the worst case is
// an empty slice.
func ParseHooks(text string) []string {
	hooks := make([]string, 0, MaxHooks)
	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		hook := cleanHook(line)
		if utf8.RuneCountInString(hook) <= minHookLength {
			continue
		}
		hooks = append(hooks, hook)
		if len(hooks) == MaxHooks {
			break
		}
	}
	return hooks
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// cleanHook applies each cleanup once, in order: enumerator, bullet, outer
// quotes, surrounding whitespace.
func cleanHook(line string) string {
	s := enumeratorRe.ReplaceAllString(line, "")
	s = bulletRe.ReplaceAllString(s, "")
	s = trimQuote(s)
	return strings.TrimSpace(s)
}

func trimQuote(s string) string {
	if s != "" && isQuote(s[0]) {
		s = s[1:]
	}
	if s != "" && isQuote(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}

func isQuote(b byte) bool {
	return b == '"' || b == '\''
}
