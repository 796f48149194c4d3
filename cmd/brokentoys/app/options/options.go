package options

import (
	"runtime"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const stdio = "-"

// Options holds everything the brokentoys command can be told.
type Options struct {
	ConfigFile string
	// Input and Output are file paths; "-" means stdin and stdout.
	Input  string
	Output string
	// Workers above 1 answers queries concurrently.
	Workers int
	// Strict fails the run when any query is rejected, after printing
	// every answer.
	Strict bool
}

// NewOptions returns the default options.
func NewOptions() *Options {
	return &Options{
		Input:   stdio,
		Output:  stdio,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// AddFlags binds the options to fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile, "Path to a YAML file with defaults for the other flags. Flags given on the command line win.")
	fs.StringVarP(&o.Input, "input", "i", o.Input, "Puzzle input to read, - for stdin.")
	fs.StringVarP(&o.Output, "output", "o", o.Output, "Where to write one answer per line, - for stdout.")
	fs.IntVar(&o.Workers, "workers", o.Workers, "Number of goroutines answering queries, each with its own copy of the catalog.")
	fs.BoolVar(&o.Strict, "strict", o.Strict, "Exit with an error if any query is rejected.")
}

// Complete fills in every option not set on fs from the config file.
func (o *Options) Complete(fs *pflag.FlagSet) error {
	if o.ConfigFile == "" {
		return nil
	}
	cfg, err := loadConfigFromFile(o.ConfigFile)
	if err != nil {
		return errors.Wrapf(err, "load config %s", o.ConfigFile)
	}
	if cfg.Input != "" && !fs.Changed("input") {
		o.Input = cfg.Input
	}
	if cfg.Output != "" && !fs.Changed("output") {
		o.Output = cfg.Output
	}
	if cfg.Workers != nil && !fs.Changed("workers") {
		o.Workers = *cfg.Workers
	}
	if cfg.Strict != nil && !fs.Changed("strict") {
		o.Strict = *cfg.Strict
	}
	return nil
}

// Validate validates all the required options.
func (o *Options) Validate() []error {
	var errs []error
	if o.Workers < 1 {
		errs = append(errs, errors.Errorf("--workers must be >= 1, got %d", o.Workers))
	}
	if o.Input == "" {
		errs = append(errs, errors.New("--input must not be empty"))
	}
	if o.Output == "" {
		errs = append(errs, errors.New("--output must not be empty"))
	}
	return errs
}

// IsStdio reports whether path names stdin or stdout.
func IsStdio(path string) bool {
	return path == stdio
}
