package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"project/roa-sorter/config"
	"project/roa-sorter/formatter"
	"project/roa-sorter/roa"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

// maxLineLength bounds a single input line. Real ROA lines are far shorter.
const maxLineLength = 1 << 20

var (
	errInputRead   = errors.New("failed to read input")
	errLineTooLong = errors.New("line too long")
)

// options are the run settings resolved from flags and the config file.
type options struct {
	strict bool
}

// report summarizes a run. Any anomaly makes the process exit non-zero
// after the full output has been written.
type report struct {
	Lines        int
	Written      int
	Duplicates   int
	NonCanonical int
	OutOfOrder   int
}

func (r report) clean() bool {
	return r.Duplicates == 0 && r.NonCanonical == 0 && r.OutOfOrder == 0
}

func main() {
	// 1. Load Configuration
	cfg, err := resolveConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	if err := setupLogging(cfg); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	logrus.Debugf("Configuration: strict=%t level=%s format=%s", cfg.Strict, cfg.LogLevel, cfg.LogFormat)

	// 2. Read, sort and write
	rep, err := run(os.Stdin, os.Stdout, options{strict: cfg.Strict})
	if err != nil {
		logrus.Fatal(err)
	}

	logrus.WithFields(logrus.Fields{
		"lines":        rep.Lines,
		"written":      rep.Written,
		"duplicates":   rep.Duplicates,
		"nonCanonical": rep.NonCanonical,
		"outOfOrder":   rep.OutOfOrder,
	}).Info("Canonical ROA prefix list written")

	if !rep.clean() {
		os.Exit(1)
	}
}

// resolveConfig parses args into fs, loads the optional config file and
// lets flags set on the command line win over the file.
func resolveConfig(fs *flag.FlagSet, args []string) (*config.Config, error) {
	configFile := fs.String("config", "", "Optional YAML configuration file")
	strict := fs.Bool("strict", false, "Also report input that is not already in canonical form and order")
	logLevel := fs.String("log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	logFormat := fs.String("log-format", config.DefaultLogFormat, "Log format (text or json)")

	// Parse arguments
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.PrintDefaults()
		return nil, fmt.Errorf("unexpected argument %q: prefixes are read from standard input", fs.Arg(0))
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.LoadConfig(*configFile)
		if err != nil {
			return nil, err
		}
	}

	if fs.Changed("strict") {
		cfg.Strict = *strict
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = *logLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = *logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogging(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(level)
	logrus.SetFormatter(cfg.Formatter())
	return nil
}

// run consumes the whole input before writing anything: the canonical order
// is global, and a bad line must abort the run without partial output.
func run(in io.Reader, out io.Writer, opts options) (report, error) {
	var rep report
	set := roa.NewSet()

	var prev roa.Prefix
	havePrev := false

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		rep.Lines++
		line := scanner.Text()

		p, err := roa.ParsePrefix(line)
		if err != nil {
			return rep, fmt.Errorf("line %d: %w", rep.Lines, err)
		}
		if set.Insert(p) == roa.Duplicate {
			rep.Duplicates++
			logrus.WithField("line", rep.Lines).Debugf("Dropping duplicate prefix %s", line)
		}

		if opts.strict {
			if canonical := formatter.FormatPrefix(p); canonical != line {
				rep.NonCanonical++
				logrus.WithField("line", rep.Lines).Debugf("Prefix %q is not in canonical form, expected %s", line, canonical)
			}
			if havePrev && roa.Compare(prev, p) > 0 {
				rep.OutOfOrder++
				logrus.WithField("line", rep.Lines).Debugf("Prefix %s sorts before the preceding line", line)
			}
			prev, havePrev = p, true
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return rep, fmt.Errorf("line %d: %w (more than %d bytes)", rep.Lines+1, errLineTooLong, maxLineLength)
		}
		return rep, fmt.Errorf("%w: %v", errInputRead, err)
	}

	n, err := formatter.WriteSorted(out, set.Drain())
	rep.Written = n
	if err != nil {
		return rep, fmt.Errorf("failed to write output: %w", err)
	}
	return rep, nil
}
