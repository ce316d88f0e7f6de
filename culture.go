package datetext

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CultureData is the raw locale data a Culture is built from. Month and day
// name slices are indexed from 1 (index 0 is ignored); day names use ISO
// numbering, Monday through Sunday. Era name lists are ordered by matching
// preference; the first entry is used when formatting.
type CultureData struct {
	Tag language.Tag

	DateSeparator    string
	TimeSeparator    string
	DecimalSeparator string

	AMDesignator string
	PMDesignator string

	MonthNames              []string
	ShortMonthNames         []string
	MonthGenitiveNames      []string
	ShortMonthGenitiveNames []string
	DayNames                []string
	ShortDayNames           []string

	EraNames map[Era][]string

	ShortDatePattern string
	LongDatePattern  string
	ShortTimePattern string
	LongTimePattern  string
}

// Culture supplies the locale-sensitive separators, name lists and standard
// pattern texts consumed while compiling patterns. Cultures are immutable
// after construction and safe for concurrent use.
type Culture struct {
	data CultureData
}

// NewCulture builds a culture from raw locale data, filling any missing
// fields from the invariant culture.
func NewCulture(data CultureData) (*Culture, error) {
	base := invariantData()
	if data.DateSeparator == "" {
		data.DateSeparator = base.DateSeparator
	}
	if data.TimeSeparator == "" {
		data.TimeSeparator = base.TimeSeparator
	}
	if data.DecimalSeparator == "" {
		data.DecimalSeparator = base.DecimalSeparator
	}
	if data.AMDesignator == "" {
		data.AMDesignator = base.AMDesignator
	}
	if data.PMDesignator == "" {
		data.PMDesignator = base.PMDesignator
	}
	if data.MonthNames == nil {
		data.MonthNames = base.MonthNames
	}
	if data.ShortMonthNames == nil {
		data.ShortMonthNames = base.ShortMonthNames
	}
	if data.MonthGenitiveNames == nil {
		data.MonthGenitiveNames = data.MonthNames
	}
	if data.ShortMonthGenitiveNames == nil {
		data.ShortMonthGenitiveNames = data.ShortMonthNames
	}
	if data.DayNames == nil {
		data.DayNames = base.DayNames
	}
	if data.ShortDayNames == nil {
		data.ShortDayNames = base.ShortDayNames
	}
	if data.EraNames == nil {
		data.EraNames = base.EraNames
	}
	if data.ShortDatePattern == "" {
		data.ShortDatePattern = base.ShortDatePattern
	}
	if data.LongDatePattern == "" {
		data.LongDatePattern = base.LongDatePattern
	}
	if data.ShortTimePattern == "" {
		data.ShortTimePattern = base.ShortTimePattern
	}
	if data.LongTimePattern == "" {
		data.LongTimePattern = base.LongTimePattern
	}
	for _, names := range [][]string{data.MonthNames, data.ShortMonthNames, data.MonthGenitiveNames, data.ShortMonthGenitiveNames} {
		if len(names) < 13 {
			return nil, fmt.Errorf("culture: month name lists need 13 entries (index 0 unused), got %d", len(names))
		}
	}
	for _, names := range [][]string{data.DayNames, data.ShortDayNames} {
		if len(names) < 8 {
			return nil, fmt.Errorf("culture: day name lists need 8 entries (index 0 unused), got %d", len(names))
		}
	}
	return &Culture{data: data}, nil
}

func invariantData() CultureData {
	return CultureData{
		Tag:              language.Und,
		DateSeparator:    "/",
		TimeSeparator:    ":",
		DecimalSeparator: ".",
		AMDesignator:     "AM",
		PMDesignator:     "PM",
		MonthNames: []string{"",
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
		ShortMonthNames: []string{"",
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		DayNames: []string{"",
			"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
		ShortDayNames: []string{"",
			"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		EraNames: map[Era][]string{
			EraCE:  {"A.D.", "AD", "CE"},
			EraBCE: {"B.C.", "BC", "BCE"},
		},
		ShortDatePattern: "MM/dd/yyyy",
		LongDatePattern:  "dddd, dd MMMM yyyy",
		ShortTimePattern: "HH:mm",
		LongTimePattern:  "HH:mm:ss",
	}
}

var cultureInvariant = func() *Culture {
	c, err := NewCulture(invariantData())
	if err != nil {
		panic(err)
	}
	return c
}()

// CultureInvariant returns the culture-independent locale data.
func CultureInvariant() *Culture { return cultureInvariant }

// Tag returns the language tag identifying this culture.
func (c *Culture) Tag() language.Tag { return c.data.Tag }

// DateSeparator returns the literal matched and emitted for '/'.
func (c *Culture) DateSeparator() string { return c.data.DateSeparator }

// TimeSeparator returns the literal matched and emitted for ':'.
func (c *Culture) TimeSeparator() string { return c.data.TimeSeparator }

// DecimalSeparator returns the locale decimal separator.
func (c *Culture) DecimalSeparator() string { return c.data.DecimalSeparator }

// AMDesignator returns the ante-meridiem designator.
func (c *Culture) AMDesignator() string { return c.data.AMDesignator }

// PMDesignator returns the post-meridiem designator.
func (c *Culture) PMDesignator() string { return c.data.PMDesignator }

// MonthNames returns the long month names, indexed from 1.
func (c *Culture) MonthNames() []string { return c.data.MonthNames }

// ShortMonthNames returns the abbreviated month names, indexed from 1.
func (c *Culture) ShortMonthNames() []string { return c.data.ShortMonthNames }

// MonthGenitiveNames returns the genitive long month names, indexed from 1.
func (c *Culture) MonthGenitiveNames() []string { return c.data.MonthGenitiveNames }

// ShortMonthGenitiveNames returns the genitive abbreviated month names.
func (c *Culture) ShortMonthGenitiveNames() []string { return c.data.ShortMonthGenitiveNames }

// DayNames returns the long day names, ISO-indexed from 1 (Monday).
func (c *Culture) DayNames() []string { return c.data.DayNames }

// ShortDayNames returns the abbreviated day names, ISO-indexed from 1.
func (c *Culture) ShortDayNames() []string { return c.data.ShortDayNames }

// EraNames returns the era name list for an era, ordered by preference.
func (c *Culture) EraNames(era Era) []string { return c.data.EraNames[era] }

// ShortDatePattern returns the pattern text backing the standard 'd' pattern.
func (c *Culture) ShortDatePattern() string { return c.data.ShortDatePattern }

// LongDatePattern returns the pattern text backing the standard 'D' pattern.
func (c *Culture) LongDatePattern() string { return c.data.LongDatePattern }

// ShortTimePattern returns the pattern text backing the standard 't' pattern.
func (c *Culture) ShortTimePattern() string { return c.data.ShortTimePattern }

// LongTimePattern returns the pattern text backing the standard 'T' pattern.
func (c *Culture) LongTimePattern() string { return c.data.LongTimePattern }

// FoldCase maps text to its case-folded form for case-insensitive matching.
func (c *Culture) FoldCase(s string) string {
	return cases.Fold().String(s)
}
