package datetext

import (
	"strings"
	"testing"

	"github.com/nodatime/datetext/errors"
)

func TestCompositePatternBuilderEmpty(t *testing.T) {
	var b CompositePatternBuilder[LocalTime]
	_, err := b.Build()
	perr, ok := errors.AsPattern(err)
	if !ok {
		t.Fatalf("error %v is not a PatternError", err)
	}
	if perr.Code != errors.ErrEmptyCompositePattern {
		t.Fatalf("Code = %q, want %q", perr.Code, errors.ErrEmptyCompositePattern)
	}
}

func TestCompositePatternParseAndFormat(t *testing.T) {
	long, err := NewLocalTimePatternInvariant("HH':'mm':'ss")
	if err != nil {
		t.Fatalf("compile long: %v", err)
	}
	short, err := NewLocalTimePatternInvariant("HH':'mm")
	if err != nil {
		t.Fatalf("compile short: %v", err)
	}

	var b CompositePatternBuilder[LocalTime]
	b.Add(long, func(LocalTime) bool { return true })
	b.Add(short, func(value LocalTime) bool { return value.Second() == 0 })
	composite, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Parsing tries components in addition order.
	got, err := composite.Parse("13:02:03").Get()
	if err != nil {
		t.Fatalf("Parse long form: %v", err)
	}
	if want := mustTime(t, 13, 2, 3); got != want {
		t.Fatalf("Parse = %v, want %v", got, want)
	}
	got, err = composite.Parse("13:02").Get()
	if err != nil {
		t.Fatalf("Parse short form: %v", err)
	}
	if want := mustTime(t, 13, 2, 0); got != want {
		t.Fatalf("Parse = %v, want %v", got, want)
	}
	if result := composite.Parse("garbage"); result.Success() {
		t.Fatal("Parse succeeded on text no component matches")
	}

	// Formatting probes predicates in reverse addition order.
	if text := composite.Format(mustTime(t, 13, 2, 0)); text != "13:02" {
		t.Fatalf("Format = %q, want %q", text, "13:02")
	}
	if text := composite.Format(mustTime(t, 13, 2, 3)); text != "13:02:03" {
		t.Fatalf("Format = %q, want %q", text, "13:02:03")
	}
}

func TestCompositePatternFormatPanicsWithoutMatch(t *testing.T) {
	p, err := NewLocalTimePatternInvariant("HH':'mm")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	var b CompositePatternBuilder[LocalTime]
	b.Add(p, func(LocalTime) bool { return false })
	composite, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Format did not panic with no accepting predicate")
		}
		if !strings.Contains(r.(string), "no component accepts") {
			t.Fatalf("panic = %v, want mention of missing predicate", r)
		}
	}()
	composite.Format(Midnight)
}
