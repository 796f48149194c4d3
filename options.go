package brokentoys

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

type workloadOption func(*Workload) error

// Workers sets how many goroutines AnswerQueriesParallel uses. Every
// worker holds its own copy of the catalog's two trees, so memory grows
// linearly with this value.
//
// Workers must be a value greater or equal to 1, New will error out
// otherwise. The default is GOMAXPROCS.
func Workers(n int) workloadOption {
	return func(w *Workload) error {
		if n < 1 {
			return errors.Wrapf(ErrInvalidOption, "workers must be >= 1, got %d", n)
		}
		w.workers = n
		return nil
	}
}

// Logger sets the logger the workload reports to. Nothing is logged
// below verbosity 4.
func Logger(logger klog.Logger) workloadOption {
	return func(w *Workload) error {
		w.logger = logger
		return nil
	}
}
