package main

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/subsums"
	"github.com/npillmayer/subsums/htmlsrc"
	"github.com/npillmayer/subsums/numfile"
	"github.com/npillmayer/subsums/printer"
	"github.com/npillmayer/subsums/seq"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errUsage = errors.New("subsums: usage")

// cliConfig is the resolved set of flags, environment variables and config file
// entries.
type cliConfig struct {
	Range         string
	File          string
	HTML          string
	Ascending     bool
	Skip          int
	Take          int
	Max           string
	Count         bool
	FrontierLimit int
	Width         int
	Color         bool
	ColorSet      bool
	Time          bool
	Trace         string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "subsums [numbers...]",
		Short:         "Print the subset sums of non-negative numbers in ascending order",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if file := v.GetString("config"); file != "" {
				v.SetConfigFile(file)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("subsums: reading config %s: %w", file, err)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c := resolveConfig(v)
			if err := setTraceLevel(c.Trace); err != nil {
				return err
			}
			return run(c, args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	v.SetEnvPrefix("SUBSUMS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	//
	flags := cmd.Flags()
	flags.String("range", "", "half-open integer range `A:B` as input")
	flags.String("file", "", "number file as input")
	flags.String("html", "", "HTML file whose text contains the input numbers")
	flags.Bool("ascending", false, "treat input as ascending stream and enumerate lazily")
	flags.Int("skip", 0, "skip the first N sums")
	flags.Int("take", 0, "print at most N sums (0 = all)")
	flags.String("max", "", "stop at the first sum greater than `V` (empty = no bound)")
	flags.Bool("count", false, "print the number of sums only")
	flags.Int("frontier-limit", 0, "fail if the frontier exceeds N entries (0 = unlimited)")
	flags.Int("width", 0, "line width for output (0 = from terminal)")
	flags.Bool("color", false, "highlight runs of equal sums")
	flags.Bool("time", false, "report elapsed time and statistics to stderr")
	flags.String("trace", "error", "trace level: debug, info or error")
	flags.String("config", "", "configuration file")
	return cmd
}

func resolveConfig(v *viper.Viper) cliConfig {
	return cliConfig{
		Range:         v.GetString("range"),
		File:          v.GetString("file"),
		HTML:          v.GetString("html"),
		Ascending:     v.GetBool("ascending"),
		Skip:          v.GetInt("skip"),
		Take:          v.GetInt("take"),
		Max:           v.GetString("max"),
		Count:         v.GetBool("count"),
		FrontierLimit: v.GetInt("frontier-limit"),
		Width:         v.GetInt("width"),
		Color:         v.GetBool("color"),
		ColorSet:      v.IsSet("color"),
		Time:          v.GetBool("time"),
		Trace:         v.GetString("trace"),
	}
}

func setTraceLevel(level string) error {
	var l tracing.TraceLevel
	switch strings.ToLower(level) {
	case "debug":
		l = tracing.LevelDebug
	case "info":
		l = tracing.LevelInfo
	case "error", "":
		l = tracing.LevelError
	default:
		return fmt.Errorf("%w: unknown trace level %q", errUsage, level)
	}
	if gtrace.CoreTracer != nil {
		gtrace.CoreTracer.SetTraceLevel(l)
	}
	return nil
}

func run(c cliConfig, args []string, stdout, stderr io.Writer) error {
	sources := 0
	for _, s := range []string{c.Range, c.File, c.HTML} {
		if s != "" {
			sources++
		}
	}
	if len(args) > 0 {
		sources++
	}
	if sources != 1 {
		return fmt.Errorf("%w: exactly one input required (numbers, --range, --file or --html)", errUsage)
	}
	if c.Skip < 0 || c.Take < 0 || c.FrontierLimit < 0 {
		return fmt.Errorf("%w: --skip, --take and --frontier-limit must not be negative", errUsage)
	}
	cfg := subsums.Config{FrontierLimit: c.FrontierLimit}
	switch {
	case c.Range != "":
		from, to, err := parseRange(c.Range)
		if err != nil {
			return err
		}
		if c.Ascending {
			return enumerate(c, subsums.NewAscending(seq.IntRange(from, to), cfg), stdout, stderr)
		}
		return enumerateSlice(c, seq.Collect(seq.IntRange(from, to)), cfg, stdout, stderr)
	case c.File != "":
		if c.Ascending {
			f, err := numfile.Open(c.File, numfile.Options{})
			if err != nil {
				return err
			}
			defer f.Close()
			if err := enumerate(c, subsums.NewAscending(f.Numbers(), cfg), stdout, stderr); err != nil {
				return err
			}
			return f.Err()
		}
		numbers, err := numfile.ReadAll(c.File)
		if err != nil {
			return err
		}
		return enumerateSlice(c, numbers, cfg, stdout, stderr)
	case c.HTML != "":
		r, err := os.Open(c.HTML)
		if err != nil {
			return err
		}
		defer r.Close()
		numbers, err := htmlsrc.Numbers(r)
		if err != nil {
			return err
		}
		return enumerateSlice(c, numbers, cfg, stdout, stderr)
	}
	if ints, err := parseInts(args); err == nil {
		return enumerateSlice(c, ints, cfg, stdout, stderr)
	}
	floats, err := parseFloats(args)
	if err != nil {
		return err
	}
	return enumerateSlice(c, floats, cfg, stdout, stderr)
}

// enumerateSlice enumerates elements given in memory. With --ascending the
// elements are checked to be in order instead of being sorted.
func enumerateSlice[N subsums.Number](c cliConfig, elements []N, cfg subsums.Config,
	stdout, stderr io.Writer) error {
	//
	if c.Ascending {
		return enumerate(c, subsums.NewAscending(slices.Values(elements), cfg), stdout, stderr)
	}
	e, err := subsums.New(elements, cfg)
	if err != nil {
		return err
	}
	return enumerate(c, e, stdout, stderr)
}

// enumerate runs the consumer pipeline on e and writes the result to stdout.
func enumerate[N subsums.Number](c cliConfig, e *subsums.Enumerator[N], stdout, stderr io.Writer) error {
	defer e.Stop()
	limit, bounded, err := parseBound[N](c.Max)
	if err != nil {
		return err
	}
	start := time.Now()
	var s iter.Seq[N] = e.Range()
	if c.Skip > 0 {
		s = seq.Skip(s, c.Skip)
	}
	if bounded {
		s = seq.TakeWhile(s, func(x N) bool { return x <= limit })
	}
	if c.Take > 0 {
		s = seq.Take(s, c.Take)
	}
	var n int
	if c.Count {
		n = seq.Count(s)
		_, err = fmt.Fprintln(stdout, n)
	} else {
		n, err = printer.Print(printer.New(stdout, printerConfig(c, stdout)), s)
	}
	if err == nil {
		err = e.Err()
	}
	if t := subsums.T(); t != nil {
		t.Infof("subsums: %d sums in %v", n, time.Since(start))
	}
	if c.Time {
		st := e.Stats()
		fmt.Fprintf(stderr, "%d sums in %v (produced=%d pushed=%d frontier=%d max-frontier=%d elements=%d)\n",
			n, time.Since(start), st.Produced, st.Pushed, st.FrontierLen, st.FrontierMax, st.Elements)
	}
	return err
}

func printerConfig(c cliConfig, stdout io.Writer) *printer.Config {
	fd := -1
	if f, ok := stdout.(*os.File); ok {
		fd = int(f.Fd())
	}
	pc := printer.ConfigFromTerminal(fd)
	if c.Width > 0 {
		pc.LineWidth = c.Width
	}
	if c.ColorSet {
		pc.Color = c.Color
	}
	return pc
}

// parseBound parses the --max value in the element type of the input, so that
// integer sums are compared exactly. An empty value means no bound.
func parseBound[N subsums.Number](value string) (bound N, ok bool, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return bound, false, nil
	}
	switch any(bound).(type) {
	case float32, float64:
		x, err := strconv.ParseFloat(value, 64)
		if err != nil || x < 0 {
			return bound, false, fmt.Errorf("%w: --max %q is not a non-negative number", errUsage, value)
		}
		return N(x), true, nil
	}
	x, err := strconv.ParseInt(value, 10, 64)
	if err != nil || x < 0 {
		return bound, false, fmt.Errorf("%w: --max %q is not a non-negative integer", errUsage, value)
	}
	return N(x), true, nil
}

func parseRange(r string) (from, to int64, err error) {
	a, b, ok := strings.Cut(r, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: range %q is not of form A:B", errUsage, r)
	}
	if from, err = strconv.ParseInt(strings.TrimSpace(a), 10, 64); err != nil {
		return 0, 0, fmt.Errorf("%w: range start %q: %v", errUsage, a, err)
	}
	if to, err = strconv.ParseInt(strings.TrimSpace(b), 10, 64); err != nil {
		return 0, 0, fmt.Errorf("%w: range end %q: %v", errUsage, b, err)
	}
	if from < 0 || to < from {
		return 0, 0, fmt.Errorf("%w: range %q must satisfy 0 <= A <= B", errUsage, r)
	}
	return from, to, nil
}

func parseInts(args []string) ([]int64, error) {
	ints := make([]int64, len(args))
	for i, a := range args {
		x, err := strconv.ParseInt(strings.TrimSuffix(a, ","), 10, 64)
		if err != nil {
			return nil, err
		}
		ints[i] = x
	}
	return ints, nil
}

func parseFloats(args []string) ([]float64, error) {
	floats := make([]float64, len(args))
	for i, a := range args {
		x, err := strconv.ParseFloat(strings.TrimSuffix(a, ","), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", errUsage, a)
		}
		floats[i] = x
	}
	return floats, nil
}
