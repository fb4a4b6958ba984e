package domain

import (
	"fmt"
	"strings"
)

// Pattern is a compiled literal matcher. The search text is always treated
// as a literal string, never as a regular expression, which removes a whole
// class of escaping bugs with special characters. Case-insensitive patterns
// fold case on both sides of every comparison.
type Pattern struct {
	text          string
	folded        string
	caseSensitive bool
}

// LineMatch is one line of text containing at least one occurrence.
type LineMatch struct {
	// Number is the 1-based line number.
	Number int

	// Text is the full, untruncated line content.
	Text string
}

// NewPattern compiles a literal pattern. Only the empty pattern is
// rejected; whitespace is a legitimate literal to search for. Emptiness
// fails here so it can never be silently interpreted as match-everything
// or match-nothing.
func NewPattern(text string, caseSensitive bool) (*Pattern, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrEmptyPattern)
	}
	return &Pattern{
		text:          text,
		folded:        strings.ToLower(text),
		caseSensitive: caseSensitive,
	}, nil
}

// Text returns the literal pattern text.
func (p *Pattern) Text() string {
	return p.text
}

// CaseSensitive reports whether matching is case-sensitive.
func (p *Pattern) CaseSensitive() bool {
	return p.caseSensitive
}

// Count returns the number of non-overlapping occurrences of the pattern
// in text.
func (p *Pattern) Count(text string) int {
	if p.caseSensitive {
		return strings.Count(text, p.text)
	}
	return strings.Count(strings.ToLower(text), p.folded)
}

// Index returns the byte offset of the first occurrence in s, or -1.
func (p *Pattern) Index(s string) int {
	if p.caseSensitive {
		return strings.Index(s, p.text)
	}
	return indexFold(s, p.text)
}

// MatchesLine reports whether line contains at least one occurrence.
func (p *Pattern) MatchesLine(line string) bool {
	return p.Index(line) >= 0
}

// FindLines returns every line containing at least one occurrence, in
// ascending line-number order. Line numbers are 1-based.
func (p *Pattern) FindLines(text string) []LineMatch {
	var matches []LineMatch
	for i, line := range splitLines(text) {
		if p.MatchesLine(line) {
			matches = append(matches, LineMatch{Number: i + 1, Text: line})
		}
	}
	return matches
}

// Replace returns line with every occurrence of the pattern substituted by
// replacement, honouring the pattern's case sensitivity. The original
// casing of non-matching text is preserved.
func (p *Pattern) Replace(line, replacement string) string {
	if p.caseSensitive {
		return strings.ReplaceAll(line, p.text, replacement)
	}

	var b strings.Builder
	for {
		i := indexFold(line, p.text)
		if i < 0 {
			b.WriteString(line)
			return b.String()
		}
		b.WriteString(line[:i])
		b.WriteString(replacement)
		line = line[i+len(p.text):]
	}
}

// indexFold returns the byte offset of the first case-folded occurrence of
// needle in s, or -1. Occurrences are matched over windows of the needle's
// byte length, which holds under simple folding for ASCII and the
// overwhelming majority of cased scripts.
func indexFold(s, needle string) int {
	n := len(needle)
	if n == 0 || n > len(s) {
		return -1
	}
	for i := 0; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], needle) {
			return i
		}
	}
	return -1
}

// splitLines splits text into lines, tolerating both LF and CRLF endings.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
