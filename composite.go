package datetext

import (
	"bytes"
	"fmt"

	"github.com/nodatime/datetext/errors"
	"github.com/nodatime/datetext/internal/cursor"
)

// CompositePatternBuilder combines several independently-built patterns into
// one. Parsing tries the components in addition order; formatting selects the
// component whose predicate accepts the value, probing in reverse addition
// order so that the most precise patterns should be added first.
type CompositePatternBuilder[T any] struct {
	patterns   []Pattern[T]
	predicates []func(value T) bool
}

// Add appends a component pattern with its format-applicability predicate.
func (b *CompositePatternBuilder[T]) Add(pattern Pattern[T], predicate func(value T) bool) {
	b.patterns = append(b.patterns, pattern)
	b.predicates = append(b.predicates, predicate)
}

// Build produces the composite pattern; at least one component is required.
func (b *CompositePatternBuilder[T]) Build() (Pattern[T], error) {
	if len(b.patterns) == 0 {
		return nil, errors.NewPattern(errors.ErrEmptyCompositePattern, "",
			"a composite pattern requires at least one component")
	}
	patterns := make([]Pattern[T], len(b.patterns))
	copy(patterns, b.patterns)
	predicates := make([]func(value T) bool, len(b.predicates))
	copy(predicates, b.predicates)
	return &compositePattern[T]{patterns: patterns, predicates: predicates}, nil
}

type compositePattern[T any] struct {
	patterns   []Pattern[T]
	predicates []func(value T) bool
}

// Parse tries each component in addition order, returning the first success.
// A component failure that does not permit trying further formats is
// returned immediately: a hard syntax failure cannot be fixed by an
// alternative, while "the value did not fit this component" can.
func (p *compositePattern[T]) Parse(text string) ParseResult[T] {
	for _, pattern := range p.patterns {
		result := pattern.Parse(text)
		if result.Success() || !result.continueAfterErrorWithMultipleFormats {
			return result
		}
	}
	return resultNoMatchingFormat[T](text)
}

// Format formats with the last-added component whose predicate accepts the
// value. No predicate accepting is a configuration error in the composite,
// not an input error, and is signaled distinctly.
func (p *compositePattern[T]) Format(value T) string {
	var buf bytes.Buffer
	p.AppendFormat(value, &buf)
	return buf.String()
}

// AppendFormat appends the formatted value to the buffer.
func (p *compositePattern[T]) AppendFormat(value T, buf *bytes.Buffer) {
	for i := len(p.predicates) - 1; i >= 0; i-- {
		if p.predicates[i](value) {
			p.patterns[i].AppendFormat(value, buf)
			return
		}
	}
	panic(fmt.Sprintf("composite pattern misconfigured: no component accepts value %v for formatting", value))
}

// parsePartial makes composites embeddable when every component supports
// partial parsing.
func (p *compositePattern[T]) parsePartial(c *cursor.Value) ParseResult[T] {
	startingIndex := c.Index()
	for _, pattern := range p.patterns {
		partial, ok := pattern.(partialPattern[T])
		if !ok {
			continue
		}
		result := partial.parsePartial(c)
		if result.Success() || !result.continueAfterErrorWithMultipleFormats {
			return result
		}
		c.Move(startingIndex)
	}
	return resultNoMatchingFormat[T](c.String())
}
