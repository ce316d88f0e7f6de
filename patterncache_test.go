package datetext

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPatternCacheReturnsSameInstance(t *testing.T) {
	parser := newFixedCulturePatternParser[LocalDate](&localDatePatternParser{
		templateValue:   defaultLocalDateTemplate,
		twoDigitYearMax: defaultTwoDigitYearMax,
	}, CultureInvariant())

	first, err := parser.parsePattern("uuuu'-'MM'-'dd")
	require.NoError(t, err)
	second, err := parser.parsePattern("uuuu'-'MM'-'dd")
	require.NoError(t, err)
	if first != second {
		t.Fatal("identical pattern text compiled to distinct instances")
	}
	require.Equal(t, 1, parser.cacheLen())
}

func TestPatternCacheSkipsFailures(t *testing.T) {
	parser := newFixedCulturePatternParser[LocalDate](&localDatePatternParser{
		templateValue:   defaultLocalDateTemplate,
		twoDigitYearMax: defaultTwoDigitYearMax,
	}, CultureInvariant())

	_, err := parser.parsePattern("uuuu Q")
	require.Error(t, err)
	require.Equal(t, 0, parser.cacheLen())

	// The same garbage compiles again and fails again; the cache stays empty.
	_, err = parser.parsePattern("uuuu Q")
	require.Error(t, err)
	require.Equal(t, 0, parser.cacheLen())
}

func TestPatternCachePerCulture(t *testing.T) {
	caches := newCultureCaches[LocalDate](&localDatePatternParser{
		templateValue:   defaultLocalDateTemplate,
		twoDigitYearMax: defaultTwoDigitYearMax,
	})
	invariant := caches.forCulture(CultureInvariant())
	require.Same(t, invariant, caches.forCulture(CultureInvariant()))

	other, err := NewCulture(CultureData{DateSeparator: "."})
	require.NoError(t, err)
	require.NotSame(t, invariant, caches.forCulture(other))
}

func TestPatternCacheConcurrent(t *testing.T) {
	parser := newFixedCulturePatternParser[LocalDate](&localDatePatternParser{
		templateValue:   defaultLocalDateTemplate,
		twoDigitYearMax: defaultTwoDigitYearMax,
	}, CultureInvariant())

	const goroutines = 8
	const iterations = 25

	texts := []string{"uuuu'-'MM'-'dd", "dd MMMM uuuu", "MM/dd/yyyy"}
	errCh := make(chan error, goroutines*iterations)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				if _, err := parser.parsePattern(texts[j%len(texts)]); err != nil {
					errCh <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("concurrent parsePattern: %v", err)
	}
	require.Equal(t, len(texts), parser.cacheLen())
}
