package brokentoys

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPrice indicates a negative price, or a catalog whose
	// total does not fit in an int64.
	ErrInvalidPrice = errors.New("brokentoys: invalid price")
	// ErrInvalidQuery indicates a negative budget, an excluded index
	// outside [1, N], or the same index excluded twice.
	ErrInvalidQuery = errors.New("brokentoys: invalid query")
	// ErrMalformedQuery indicates a flat query encoding that does not
	// match [budget, k, idx_1 … idx_k].
	ErrMalformedQuery = errors.New("brokentoys: malformed query encoding")
	// ErrMalformedProblem indicates puzzle input that ends early or
	// holds something other than integers.
	ErrMalformedProblem = errors.New("brokentoys: malformed problem input")
	// ErrInvalidOption indicates an option value New cannot accept.
	ErrInvalidOption = errors.New("brokentoys: invalid option")
)

// QueryError is the reason a single query of a batch was rejected.
type QueryError struct {
	// Index is the 0-based position of the query in its batch.
	Index int
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %d: %v", e.Index+1, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// BatchError lists every query a batch rejected, in batch order. The
// other queries of the batch were still answered.
type BatchError []*QueryError

func (e BatchError) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, qe := range e {
		msgs[i] = qe.Error()
	}
	return fmt.Sprintf("%d queries rejected: %s", len(e), strings.Join(msgs, "; "))
}

func (e BatchError) Unwrap() []error {
	errs := make([]error, len(e))
	for i, qe := range e {
		errs[i] = qe
	}
	return errs
}

func (e BatchError) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
