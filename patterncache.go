package datetext

import "sync"

// patternParser compiles pattern text against one fixed culture. Per-type
// implementations hold the character handler table and standard-letter
// expansion rules.
type patternParser[T any] interface {
	parsePattern(patternText string, culture *Culture) (Pattern[T], error)
}

// fixedCulturePatternParser is a caching decorator in front of a per-type
// parser bound to one culture: identical pattern text compiles once. Only
// successful compilations are cached, so probing with garbage pattern text
// neither poisons nor grows the cache; the failure path is simply recomputed.
type fixedCulturePatternParser[T any] struct {
	parser  patternParser[T]
	culture *Culture

	mu    sync.Mutex
	cache map[string]Pattern[T]
}

func newFixedCulturePatternParser[T any](parser patternParser[T], culture *Culture) *fixedCulturePatternParser[T] {
	return &fixedCulturePatternParser[T]{
		parser:  parser,
		culture: culture,
		cache:   map[string]Pattern[T]{},
	}
}

// parsePattern returns the cached compilation of patternText, compiling on a
// miss. Compilation runs outside the lock; the lock is only held for the
// lookup and the insert, so concurrent misses may compile the same text
// twice and the first insert wins.
func (p *fixedCulturePatternParser[T]) parsePattern(patternText string) (Pattern[T], error) {
	p.mu.Lock()
	cached, ok := p.cache[patternText]
	p.mu.Unlock()
	if ok {
		return cached, nil
	}

	pattern, err := p.parser.parsePattern(patternText, p.culture)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	if existing, ok := p.cache[patternText]; ok {
		pattern = existing
	} else {
		p.cache[patternText] = pattern
	}
	p.mu.Unlock()
	return pattern, nil
}

func (p *fixedCulturePatternParser[T]) cacheLen() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.cache)
}

// uncachedPatternParser has the same shape as the caching decorator but
// compiles every request, for cultures too short-lived to be worth caching
// against.
type uncachedPatternParser[T any] struct {
	parser  patternParser[T]
	culture *Culture
}

func (p *uncachedPatternParser[T]) parsePattern(patternText string) (Pattern[T], error) {
	return p.parser.parsePattern(patternText, p.culture)
}

// cultureCaches maps cultures to their caching parser for one value type.
// The public pattern façades route compilation through this so that a given
// (culture, pattern text) pair compiles once per process.
type cultureCaches[T any] struct {
	parser patternParser[T]

	mu     sync.Mutex
	caches map[*Culture]*fixedCulturePatternParser[T]
}

func newCultureCaches[T any](parser patternParser[T]) *cultureCaches[T] {
	return &cultureCaches[T]{
		parser: parser,
		caches: map[*Culture]*fixedCulturePatternParser[T]{},
	}
}

func (c *cultureCaches[T]) forCulture(culture *Culture) *fixedCulturePatternParser[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	cached, ok := c.caches[culture]
	if !ok {
		cached = newFixedCulturePatternParser(c.parser, culture)
		c.caches[culture] = cached
	}
	return cached
}
