package cursor

import (
	"strings"

	"github.com/nodatime/datetext/errors"
)

// Delimiters for embedded sub-patterns, e.g. o<HH:mm>.
const (
	EmbeddedPatternStart = '<'
	EmbeddedPatternEnd   = '>'
)

// Pattern is a cursor over pattern text, adding the scanning operations the
// pattern compiler needs: quoted literal extraction, repeat counting, and
// embedded sub-pattern extraction.
type Pattern struct {
	Text
}

// NewPattern creates a pattern cursor positioned before the first character.
func NewPattern(pattern string) *Pattern {
	return &Pattern{Text: newText(pattern)}
}

// GetQuotedString returns the literal text between the current position and
// the next occurrence of closeQuote, leaving the cursor on the closing quote.
// A backslash within the literal escapes the following character.
func (p *Pattern) GetQuotedString(closeQuote rune) (string, error) {
	var b strings.Builder
	endQuoteFound := false
	for p.MoveNext() {
		if p.current == closeQuote {
			p.MoveNext()
			endQuoteFound = true
			break
		}
		if p.current == '\\' {
			if !p.MoveNext() {
				return "", errors.NewPattern(errors.ErrEscapeAtEndOfString, p.value,
					"the pattern ends with an escape character")
			}
		}
		b.WriteRune(p.current)
	}
	if !endQuoteFound {
		return "", errors.NewPattern(errors.ErrMissingEndQuote, p.value,
			"the pattern is missing the end quote character %q", closeQuote)
	}
	p.MovePrevious()
	return b.String(), nil
}

// GetRepeatCount counts how many times the current character is repeated,
// including the current occurrence, leaving the cursor on the final
// occurrence. Counts above maximumCount fail.
func (p *Pattern) GetRepeatCount(maximumCount int) (int, error) {
	patternCharacter := p.current
	startPos := p.index
	for p.MoveNext() && p.current == patternCharacter {
	}
	repeatLength := p.index - startPos
	// The cursor ends up one beyond the last repetition; move back onto it.
	if p.index > startPos {
		p.Move(p.index - 1)
	}
	if repeatLength > maximumCount {
		return 0, errors.NewPattern(errors.ErrRepeatCountExceeded, p.value,
			"there were more consecutive copies of the pattern character %q than the maximum allowed (%d)",
			patternCharacter, maximumCount)
	}
	return repeatLength, nil
}

// GetEmbeddedPattern extracts an embedded sub-pattern: the cursor must be
// positioned immediately before the opening '<', and is left on the closing
// '>' so the caller's scan loop advances past it. Exactly one level of
// nested matching delimiters within the sub-pattern is supported; deeper
// nesting is not.
func (p *Pattern) GetEmbeddedPattern() (string, error) {
	if !p.MoveNext() || p.current != EmbeddedPatternStart {
		return "", errors.NewPattern(errors.ErrMissingEmbeddedPatternStart, p.value,
			"the pattern is missing an embedded pattern start character %q", EmbeddedPatternStart)
	}
	startIndex := p.index + 1
	depth := 1
	for p.MoveNext() {
		switch p.current {
		case EmbeddedPatternEnd:
			depth--
			if depth == 0 {
				return string(p.runes[startIndex:p.index]), nil
			}
		case EmbeddedPatternStart:
			depth++
			if depth > 2 {
				return "", errors.NewPattern(errors.ErrEmbeddedPatternNestingTooDeep, p.value,
					"embedded patterns may be nested only one level deep")
			}
		}
	}
	return "", errors.NewPattern(errors.ErrMissingEmbeddedPatternEnd, p.value,
		"the pattern is missing an embedded pattern end character %q", EmbeddedPatternEnd)
}
