// Package text translates and strips legacy section-sign colour codes.
package text

import "strings"

const (
	// ColorChar prefixes a formatting code in rendered text
	ColorChar = '§'

	// AltColorChar is the author-friendly prefix translated by Colorize
	AltColorChar = '&'

	// Reset clears colour and formatting
	Reset = "§r"

	colorPrefix = string(ColorChar)
)

const codes = "0123456789AaBbCcDdEeFfKkLlMmNnOoRrXx"

func isCode(b byte) bool {
	return strings.IndexByte(codes, b) >= 0
}

// Colorize replaces '&' with '§' wherever it precedes a valid code.
// The code itself is lowered ("&A" -> "§a"). Other bytes, including
// invalid UTF-8, pass through unchanged.
func Colorize(s string) string {
	if strings.IndexByte(s, AltColorChar) < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + strings.Count(s, "&"))
	for i := 0; i < len(s); i++ {
		if s[i] == AltColorChar && i+1 < len(s) && isCode(s[i+1]) {
			b.WriteRune(ColorChar)
			b.WriteByte(toLower(s[i+1]))
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// ColorizeAll colourises every line. Nil stays nil.
func ColorizeAll(lines []string) []string {
	if lines == nil {
		return nil
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = Colorize(l)
	}
	return out
}

// Strip removes every '§' code pair, leaving plain text
func Strip(s string) string {
	if !strings.Contains(s, colorPrefix) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if strings.HasPrefix(s[i:], colorPrefix) && i+len(colorPrefix) < len(s) && isCode(s[i+len(colorPrefix)]) {
			i += len(colorPrefix)
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// ResetEach prefixes every line with Reset
func ResetEach(lines []string) []string {
	if lines == nil {
		return nil
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = Reset + l
	}
	return out
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
