package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"

	"github.com/nodatime/datetext"
	dterrors "github.com/nodatime/datetext/errors"
)

type option struct {
	Type     string `description:"value type: localdate, localtime, localdatetime, instant, offset, offsetdate, offsettime, offsetdatetime, zoneddatetime, duration, period, annualdate or yearmonth" long:"type" default:"localdatetime"`
	Pattern  string `description:"pattern text; the type's ISO pattern when empty" long:"pattern"`
	Culture  string `description:"BCP-47 language tag for locale-sensitive text; invariant when empty" long:"culture"`
	Parse    bool   `description:"parse values with the pattern and print them in ISO form" long:"parse"`
	Format   bool   `description:"parse ISO values and print them with the pattern (the default)" long:"format"`
	LogLevel string `description:"log level (debug/info/warn/error)" long:"log-level" default:"error"`
}

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opt option
	parser := flags.NewParser(&opt, flags.Default)
	parser.Usage = "--type <type> --pattern <pattern> [--parse|--format] [value...]"
	values, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		return 2
	}
	if opt.Parse && opt.Format {
		fmt.Fprintln(stderr, "error: --parse and --format are mutually exclusive")
		return 2
	}

	logger, err := newLogger(opt.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	defer func() {
		_ = logger.Sync()
	}()

	culture, err := cultureFor(opt.Culture)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	c, err := codecFor(opt.Type, opt.Pattern, culture)
	if err != nil {
		if patternErr, ok := dterrors.AsPattern(err); ok {
			fmt.Fprintf(stderr, "invalid pattern %q: %v\n", opt.Pattern, patternErr)
			return 2
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	logger.Debug("pattern compiled",
		zap.String("type", opt.Type),
		zap.String("pattern", opt.Pattern),
		zap.String("culture", opt.Culture))

	convert := c.format
	if opt.Parse {
		convert = c.parse
	}

	if len(values) == 0 {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			values = append(values, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(stderr, "error reading stdin: %v\n", err)
			return 1
		}
	}

	failures := 0
	for _, value := range values {
		out, err := convert(value)
		if err != nil {
			logger.Warn("conversion failed", zap.String("value", value), zap.Error(err))
			fmt.Fprintf(stderr, "%s: %v\n", value, err)
			failures++
			continue
		}
		fmt.Fprintln(stdout, out)
	}
	if failures > 0 {
		return 1
	}
	return 0
}

func newLogger(level string, stderr io.Writer) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(stderr), lvl)
	return zap.New(core), nil
}

func cultureFor(name string) (*datetext.Culture, error) {
	if name == "" {
		return datetext.CultureInvariant(), nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("invalid culture tag %q: %w", name, err)
	}
	// Only the tag varies; name lists and separators fall back to the
	// invariant data until real locale tables are wired in.
	return datetext.NewCulture(datetext.CultureData{Tag: tag})
}

// pattern is the subset of every pattern facade the CLI needs.
type pattern[T any] interface {
	Parse(text string) datetext.ParseResult[T]
	Format(value T) string
}

// codec converts text in both directions: parse reads the user pattern and
// writes ISO, format reads ISO and writes the user pattern.
type codec struct {
	parse  func(text string) (string, error)
	format func(text string) (string, error)
}

func newCodec[T any](user, iso pattern[T]) codec {
	return codec{
		parse: func(text string) (string, error) {
			value, err := user.Parse(text).Get()
			if err != nil {
				return "", err
			}
			return iso.Format(value), nil
		},
		format: func(text string) (string, error) {
			value, err := iso.Parse(text).Get()
			if err != nil {
				return "", err
			}
			return user.Format(value), nil
		},
	}
}

// defaultDateTemplate is the date the CLI compiles custom patterns against,
// matching the library's own default template.
func defaultDateTemplate() datetext.LocalDate {
	d, err := datetext.NewLocalDate(2000, 1, 1)
	if err != nil {
		panic(err)
	}
	return d
}

func codecFor(typeName, patternText string, culture *datetext.Culture) (codec, error) {
	switch strings.ToLower(typeName) {
	case "localdate":
		user := pattern[datetext.LocalDate](datetext.LocalDatePatternISO)
		if patternText != "" {
			p, err := datetext.NewLocalDatePattern(patternText, culture, defaultDateTemplate())
			if err != nil {
				return codec{}, err
			}
			user = p
		}
		return newCodec(user, pattern[datetext.LocalDate](datetext.LocalDatePatternISO)), nil
	case "localtime":
		user := pattern[datetext.LocalTime](datetext.LocalTimePatternExtendedISO)
		if patternText != "" {
			p, err := datetext.NewLocalTimePattern(patternText, culture, datetext.Midnight)
			if err != nil {
				return codec{}, err
			}
			user = p
		}
		return newCodec(user, pattern[datetext.LocalTime](datetext.LocalTimePatternExtendedISO)), nil
	case "localdatetime":
		user := pattern[datetext.LocalDateTime](datetext.LocalDateTimePatternExtendedISO)
		if patternText != "" {
			p, err := datetext.NewLocalDateTimePattern(patternText, culture, defaultDateTemplate().At(datetext.Midnight))
			if err != nil {
				return codec{}, err
			}
			user = p
		}
		return newCodec(user, pattern[datetext.LocalDateTime](datetext.LocalDateTimePatternExtendedISO)), nil
	case "instant":
		user := pattern[datetext.Instant](datetext.InstantPatternExtendedISO)
		if patternText != "" {
			p, err := datetext.NewInstantPattern(patternText, culture)
			if err != nil {
				return codec{}, err
			}
			user = p
		}
		return newCodec(user, pattern[datetext.Instant](datetext.InstantPatternExtendedISO)), nil
	case "offset":
		user := pattern[datetext.Offset](datetext.OffsetPatternGeneralWithZ)
		if patternText != "" {
			p, err := datetext.NewOffsetPattern(patternText, culture)
			if err != nil {
				return codec{}, err
			}
			user = p
		}
		return newCodec(user, pattern[datetext.Offset](datetext.OffsetPatternGeneralWithZ)), nil
	case "offsetdate":
		user := pattern[datetext.OffsetDate](datetext.OffsetDatePatternGeneralISO)
		if patternText != "" {
			p, err := datetext.NewOffsetDatePattern(patternText, culture, datetext.NewOffsetDate(defaultDateTemplate(), datetext.ZeroOffset))
			if err != nil {
				return codec{}, err
			}
			user = p
		}
		return newCodec(user, pattern[datetext.OffsetDate](datetext.OffsetDatePatternGeneralISO)), nil
	case "offsettime":
		user := pattern[datetext.OffsetTime](datetext.OffsetTimePatternGeneralISO)
		if patternText != "" {
			p, err := datetext.NewOffsetTimePattern(patternText, culture, datetext.NewOffsetTime(datetext.Midnight, datetext.ZeroOffset))
			if err != nil {
				return codec{}, err
			}
			user = p
		}
		return newCodec(user, pattern[datetext.OffsetTime](datetext.OffsetTimePatternGeneralISO)), nil
	case "offsetdatetime":
		user := pattern[datetext.OffsetDateTime](datetext.OffsetDateTimePatternExtendedISO)
		if patternText != "" {
			p, err := datetext.NewOffsetDateTimePattern(patternText, culture, defaultDateTemplate().At(datetext.Midnight).WithOffset(datetext.ZeroOffset))
			if err != nil {
				return codec{}, err
			}
			user = p
		}
		return newCodec(user, pattern[datetext.OffsetDateTime](datetext.OffsetDateTimePatternExtendedISO)), nil
	case "zoneddatetime":
		provider := datetext.NewMapProvider(datetext.UTC)
		iso, err := datetext.NewZonedDateTimePatternInvariant("G", provider)
		if err != nil {
			return codec{}, err
		}
		user := pattern[datetext.ZonedDateTime](iso)
		if patternText != "" {
			p, err := datetext.NewZonedDateTimePattern(patternText, culture, provider, datetext.StrictResolver)
			if err != nil {
				return codec{}, err
			}
			user = p
		}
		return newCodec(user, pattern[datetext.ZonedDateTime](iso)), nil
	case "duration":
		user := pattern[datetext.Duration](datetext.DurationPatternRoundtrip)
		if patternText != "" {
			p, err := datetext.NewDurationPattern(patternText, culture)
			if err != nil {
				return codec{}, err
			}
			user = p
		}
		return newCodec(user, pattern[datetext.Duration](datetext.DurationPatternRoundtrip)), nil
	case "period":
		user := pattern[datetext.Period](datetext.PeriodRoundtrip)
		switch patternText {
		case "", "o":
		case "i":
			user = datetext.PeriodNormalizingISO
		default:
			return codec{}, fmt.Errorf("period supports only the standard patterns \"o\" (roundtrip) and \"i\" (normalizing ISO)")
		}
		return newCodec(user, pattern[datetext.Period](datetext.PeriodRoundtrip)), nil
	case "annualdate":
		user := pattern[datetext.AnnualDate](datetext.AnnualDatePatternISO)
		if patternText != "" {
			template, err := datetext.NewAnnualDate(1, 1)
			if err != nil {
				return codec{}, err
			}
			p, err := datetext.NewAnnualDatePattern(patternText, culture, template)
			if err != nil {
				return codec{}, err
			}
			user = p
		}
		return newCodec(user, pattern[datetext.AnnualDate](datetext.AnnualDatePatternISO)), nil
	case "yearmonth":
		user := pattern[datetext.YearMonth](datetext.YearMonthPatternISO)
		if patternText != "" {
			template, err := datetext.NewYearMonth(2000, 1)
			if err != nil {
				return codec{}, err
			}
			p, err := datetext.NewYearMonthPattern(patternText, culture, template)
			if err != nil {
				return codec{}, err
			}
			user = p
		}
		return newCodec(user, pattern[datetext.YearMonth](datetext.YearMonthPatternISO)), nil
	}
	return codec{}, fmt.Errorf("unknown value type %q", typeName)
}
