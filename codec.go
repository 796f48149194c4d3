package brokentoys

import (
	"bufio"
	"io"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// DecodeQuery decodes the flat form [budget, k, idx_1, …, idx_k] of a
// query. Besides the shape, indices must be positive and fit in an int;
// Answer checks them against the catalog.
func DecodeQuery(fields []int64) (Query, error) {
	if len(fields) < 2 {
		return Query{}, errors.Wrapf(ErrMalformedQuery, "%d fields, need at least budget and count", len(fields))
	}
	k := fields[1]
	if k < 0 || k != int64(len(fields)-2) {
		return Query{}, errors.Wrapf(ErrMalformedQuery, "count %d with %d indices", k, len(fields)-2)
	}

	q := Query{
		Budget:   fields[0],
		Excluded: make([]int, k),
	}
	for i, idx := range fields[2:] {
		if idx < 1 || idx > math.MaxInt {
			return Query{}, errors.Wrapf(ErrMalformedQuery, "broken toy %d is not a position", idx)
		}
		q.Excluded[i] = int(idx)
	}
	return q, nil
}

// Encode returns the flat form of q, the inverse of DecodeQuery.
func (q Query) Encode() []int64 {
	fields := make([]int64, 0, len(q.Excluded)+2)
	fields = append(fields, q.Budget, int64(len(q.Excluded)))
	for _, idx := range q.Excluded {
		fields = append(fields, int64(idx))
	}
	return fields
}

// Problem is a whole puzzle input: a catalog and its queries.
type Problem struct {
	Prices  []int64
	Queries []Query
}

// Solve builds a workload for the catalog and answers every query.
func (p *Problem) Solve(options ...workloadOption) ([]int, error) {
	w, err := New(p.Prices, options...)
	if err != nil {
		return nil, err
	}
	return w.AnswerQueries(p.Queries)
}

type intScanner struct {
	s     *bufio.Scanner
	token int
}

func newIntScanner(r io.Reader) *intScanner {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &intScanner{s: s}
}

func (s *intScanner) next(what string) (int64, error) {
	if !s.s.Scan() {
		if err := s.s.Err(); err != nil {
			return 0, errors.Wrapf(err, "read %s", what)
		}
		return 0, errors.Wrapf(ErrMalformedProblem, "input ends before %s", what)
	}
	s.token++
	v, err := strconv.ParseInt(s.s.Text(), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedProblem, "token %d (%s): %q is not an integer", s.token, what, s.s.Text())
	}
	return v, nil
}

func (s *intScanner) count(what string) (int, error) {
	n, err := s.next(what)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > math.MaxInt {
		return 0, errors.Wrapf(ErrMalformedProblem, "%s %d out of range", what, n)
	}
	return int(n), nil
}

// ReadProblem reads whitespace-separated integers: the number of toys
// N, the N prices, the number of queries Q, then Q queries in their
// flat form.
func ReadProblem(r io.Reader) (*Problem, error) {
	s := newIntScanner(r)

	n, err := s.count("toy count")
	if err != nil {
		return nil, err
	}
	p := &Problem{Prices: make([]int64, 0, min(n, 1<<16))}
	for i := 0; i < n; i++ {
		price, err := s.next("price")
		if err != nil {
			return nil, err
		}
		p.Prices = append(p.Prices, price)
	}

	nq, err := s.count("query count")
	if err != nil {
		return nil, err
	}
	p.Queries = make([]Query, 0, min(nq, 1<<16))
	for i := 0; i < nq; i++ {
		budget, err := s.next("budget")
		if err != nil {
			return nil, err
		}
		k, err := s.count("broken count")
		if err != nil {
			return nil, err
		}
		fields := make([]int64, 2, min(k, 1<<16)+2)
		fields[0], fields[1] = budget, int64(k)
		for j := 0; j < k; j++ {
			idx, err := s.next("broken toy")
			if err != nil {
				return nil, err
			}
			fields = append(fields, idx)
		}
		q, err := DecodeQuery(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "query %d", i+1)
		}
		p.Queries = append(p.Queries, q)
	}
	return p, nil
}
