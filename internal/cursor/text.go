// Package cursor provides forward/backward cursors over pattern and value text.
package cursor

import "math"

// Nul is the sentinel returned when a cursor is positioned outside its text.
const Nul = '\x00'

// Text is a cursor over an immutable string. The index ranges over
// [-1, length]; both ends are valid "out of bounds" positions so that a
// freshly created cursor can be advanced onto the first character and a
// finished cursor can report completion. No operation panics; failure is
// reported through boolean results and the Nul sentinel.
type Text struct {
	value   string
	runes   []rune
	index   int
	current rune
}

func newText(value string) Text {
	t := Text{
		value: value,
		runes: []rune(value),
	}
	t.move(-1)
	return t
}

// String returns the full text the cursor ranges over.
func (t *Text) String() string { return t.value }

// Len returns the length of the text in runes.
func (t *Text) Len() int { return len(t.runes) }

// Index returns the current position.
func (t *Text) Index() int { return t.index }

// Current returns the character at the current position, or Nul when the
// cursor is out of bounds.
func (t *Text) Current() rune { return t.current }

// HasMoreCharacters reports whether any characters follow the current position.
func (t *Text) HasMoreCharacters() bool { return t.index+1 < len(t.runes) }

// PeekNext returns the character after the current position without moving,
// or Nul at the end of the text.
func (t *Text) PeekNext() rune {
	if t.HasMoreCharacters() {
		return t.runes[t.index+1]
	}
	return Nul
}

// Move positions the cursor at targetIndex, clamping to [-1, length], and
// reports whether the new position is within the text.
func (t *Text) Move(targetIndex int) bool {
	return t.move(targetIndex)
}

// MoveNext advances the cursor by one and reports whether the new position is
// within the text.
func (t *Text) MoveNext() bool {
	return t.move(t.index + 1)
}

// MovePrevious retreats the cursor by one and reports whether the new
// position is within the text.
func (t *Text) MovePrevious() bool {
	return t.move(t.index - 1)
}

func (t *Text) move(targetIndex int) bool {
	switch {
	case targetIndex >= 0 && targetIndex < len(t.runes):
		t.index = targetIndex
		t.current = t.runes[t.index]
		return true
	case targetIndex < 0:
		t.index = -1
		t.current = Nul
		return false
	default:
		t.index = len(t.runes)
		t.current = Nul
		return false
	}
}

// Remainder returns the text from the current position to the end.
func (t *Text) Remainder() string {
	if t.index < 0 {
		return t.value
	}
	if t.index >= len(t.runes) {
		return ""
	}
	return string(t.runes[t.index:])
}

// Value is a cursor over input text being parsed, adding the numeric and
// textual matching operations the parse steps need.
type Value struct {
	Text
}

// NewValue creates a value cursor positioned before the first character.
func NewValue(value string) *Value {
	return &Value{Text: newText(value)}
}

// Match consumes the current character if it equals expected.
func (v *Value) Match(expected rune) bool {
	if v.current == expected {
		v.MoveNext()
		return true
	}
	return false
}

// MatchString consumes the given text if it appears, case-sensitively, at the
// current position.
func (v *Value) MatchString(match string) bool {
	target := []rune(match)
	if len(target) == 0 || v.index < 0 || v.index+len(target) > len(v.runes) {
		return false
	}
	for i, r := range target {
		if v.runes[v.index+i] != r {
			return false
		}
	}
	v.Move(v.index + len(target))
	return true
}

// MatchCaseInsensitive consumes the given text if it appears at the current
// position under the supplied case-folding function. When moveOnSuccess is
// false the cursor is left untouched even on a match, which lets callers
// probe several candidates before committing to the longest one.
func (v *Value) MatchCaseInsensitive(match string, fold func(string) string, moveOnSuccess bool) bool {
	target := []rune(match)
	if len(target) == 0 || v.index < 0 || v.index+len(target) > len(v.runes) {
		return false
	}
	prefix := string(v.runes[v.index : v.index+len(target)])
	if fold(prefix) != fold(match) {
		return false
	}
	if moveOnSuccess {
		v.Move(v.index + len(target))
	}
	return true
}

// ParseDigit consumes one decimal digit.
func (v *Value) ParseDigit() (int, bool) {
	if v.current < '0' || v.current > '9' {
		return 0, false
	}
	d := int(v.current - '0')
	v.MoveNext()
	return d, true
}

// ParseDigits consumes between minimumDigits and maximumDigits decimal
// digits, returning the parsed value. The cursor is left untouched when
// fewer than minimumDigits digits are available.
func (v *Value) ParseDigits(minimumDigits, maximumDigits int) (int, bool) {
	value64, ok := v.ParseInt64Digits(minimumDigits, maximumDigits)
	if !ok || value64 > math.MaxInt32 {
		return 0, false
	}
	return int(value64), ok
}

// ParseInt64Digits is ParseDigits over the 64-bit range.
func (v *Value) ParseInt64Digits(minimumDigits, maximumDigits int) (int64, bool) {
	start := v.index
	if start < 0 {
		start = len(v.runes)
	}
	var value int64
	count := 0
	for count < maximumDigits && v.current >= '0' && v.current <= '9' {
		digit := int64(v.current - '0')
		if value > (math.MaxInt64-digit)/10 {
			v.Move(start)
			return 0, false
		}
		value = value*10 + digit
		count++
		v.MoveNext()
	}
	if count < minimumDigits {
		v.Move(start)
		return 0, false
	}
	return value, true
}

// ParseFraction consumes between minimumDigits and maximumDigits fractional
// digits and scales the result to the given number of digits: parsing "5"
// with scale 9 yields 500000000. The cursor is left untouched on failure.
func (v *Value) ParseFraction(maximumDigits, scale, minimumDigits int) (int, bool) {
	if scale < maximumDigits {
		scale = maximumDigits
	}
	start := v.index
	if start < 0 {
		start = len(v.runes)
	}
	value := 0
	count := 0
	for count < maximumDigits && v.current >= '0' && v.current <= '9' {
		value = value*10 + int(v.current-'0')
		count++
		v.MoveNext()
	}
	if count < minimumDigits {
		v.Move(start)
		return 0, false
	}
	for i := count; i < scale; i++ {
		value *= 10
	}
	return value, true
}
