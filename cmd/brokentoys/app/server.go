package app

import (
	"bufio"
	"context"
	"flag"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	brokentoys "github.com/caio/go-brokentoys"
	"github.com/caio/go-brokentoys/cmd/brokentoys/app/options"
)

// ComponentName is the command name and the logger name of a run.
const ComponentName = "brokentoys"

// NewBrokenToysCommand creates the brokentoys command with its flags.
func NewBrokenToysCommand() *cobra.Command {
	opts := options.NewOptions()
	cmd := &cobra.Command{
		Use:   ComponentName,
		Short: "Answer maximum broken toys queries",
		Long: `brokentoys reads a toy catalog and a list of queries, and prints for every
query how many unbroken toys its budget buys, cheapest first.

The input is whitespace-separated integers: the number of toys, their
prices, the number of queries, then one "budget k idx_1 ... idx_k" line
per query, where the indices are the 1-based positions of broken toys.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, opts)
		},
	}

	opts.AddFlags(cmd.Flags())
	klogFlags := flag.NewFlagSet(ComponentName, flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.Flags().AddGoFlagSet(klogFlags)
	return cmd
}

func runCommand(cmd *cobra.Command, opts *options.Options) error {
	if err := opts.Complete(cmd.Flags()); err != nil {
		return err
	}
	if errs := opts.Validate(); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, err := range errs {
			msgs[i] = err.Error()
		}
		return errors.Errorf("invalid options: %s", strings.Join(msgs, "; "))
	}

	in := cmd.InOrStdin()
	if !options.IsStdio(opts.Input) {
		f, err := os.Open(opts.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out := cmd.OutOrStdout()
	if !options.IsStdio(opts.Output) {
		f, err := os.Create(opts.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return Run(cmd.Context(), opts, in, out)
}

// Run answers the problem read from in and writes one answer per line
// to out. Rejected queries are logged and printed as -1; with
// opts.Strict they also fail the run.
func Run(ctx context.Context, opts *options.Options, in io.Reader, out io.Writer) error {
	logger := klog.FromContext(ctx).WithName(ComponentName)
	start := time.Now()

	problem, err := brokentoys.ReadProblem(in)
	if err != nil {
		return err
	}
	w, err := brokentoys.New(problem.Prices, brokentoys.Workers(opts.Workers), brokentoys.Logger(logger))
	if err != nil {
		return err
	}

	var answers []int
	if opts.Workers > 1 {
		answers, err = w.AnswerQueriesParallel(ctx, problem.Queries)
	} else {
		answers, err = w.AnswerQueries(problem.Queries)
	}
	var rejected brokentoys.BatchError
	if err != nil && !errors.As(err, &rejected) {
		return err
	}
	for _, qe := range rejected {
		logger.Error(qe.Err, "Rejected query", "query", qe.Index+1)
	}

	bw := bufio.NewWriter(out)
	var line []byte
	for _, a := range answers {
		line = strconv.AppendInt(line[:0], int64(a), 10)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	logger.V(2).Info("Answered queries", "toys", w.Len(), "queries", len(answers), "rejected", len(rejected), "duration", time.Since(start))
	if opts.Strict && len(rejected) > 0 {
		return rejected
	}
	return nil
}
