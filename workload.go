// Package brokentoys answers "maximum broken toys" queries: given a
// catalog of toy prices, how many toys can be bought with a budget,
// cheapest first, when some of the toys are broken and cannot be
// bought.
//
// The catalog is sorted once and kept in two Fenwick trees, one summing
// prices and one counting toys. A query knocks its broken toys out of
// both trees, searches for the longest affordable prefix of the sorted
// catalog, counts the unbroken toys inside it, and puts the broken toys
// back before returning.
package brokentoys

import (
	"cmp"
	"math"
	"runtime"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"k8s.io/klog/v2"

	"github.com/caio/go-brokentoys/fenwick"
)

// Query asks how many unbroken toys Budget buys. Excluded holds the
// broken toys as 1-based positions into the catalog as it was given to
// New, before sorting.
type Query struct {
	Budget   int64
	Excluded []int
}

// Rejected is the answer AnswerQueries records for a query that failed
// validation.
const Rejected = -1

// Workload is a toy catalog prepared for queries.
//
// Between two queries both trees reflect the full catalog. A Workload is
// not safe for concurrent use; see AnswerQueriesParallel.
type Workload struct {
	prices []int64 // ascending
	rank   []int   // original position -> position in prices

	priceTree *fenwick.Tree[int64]
	countTree *fenwick.Tree[int64]

	// marked is scratch space for duplicate detection and is all false
	// outside of validate.
	marked []bool

	workers int
	logger  klog.Logger
}

// New sorts the catalog and builds both trees in O(n log n). Prices
// must not be negative, since the affordable-prefix search relies on
// prefix sums never decreasing.
func New(prices []int64, options ...workloadOption) (*Workload, error) {
	w := &Workload{
		workers: runtime.GOMAXPROCS(0),
		logger:  klog.Background(),
	}
	for _, opt := range options {
		if err := opt(w); err != nil {
			return nil, err
		}
	}

	var total int64
	for i, p := range prices {
		if p < 0 {
			return nil, errors.Wrapf(ErrInvalidPrice, "price %d at position %d", p, i+1)
		}
		if p > math.MaxInt64-total {
			return nil, errors.Wrapf(ErrInvalidPrice, "catalog total overflows at position %d", i+1)
		}
		total += p
	}

	n := len(prices)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(prices[a], prices[b])
	})

	w.prices = make([]int64, n)
	w.rank = make([]int, n)
	for pos, orig := range order {
		w.rank[orig] = pos
		w.prices[pos] = prices[orig]
	}

	ones := make([]int64, n)
	for i := range ones {
		ones[i] = 1
	}
	w.priceTree = fenwick.New(fenwick.Sum[int64](), w.prices...)
	w.countTree = fenwick.New(fenwick.Sum[int64](), ones...)
	w.marked = make([]bool, n)

	w.logger.V(4).Info("Built toy catalog", "toys", n, "total", total)
	return w, nil
}

// Len returns the number of toys in the catalog.
func (w *Workload) Len() int {
	return len(w.prices)
}

// Total returns the price of the whole catalog.
func (w *Workload) Total() int64 {
	return w.priceTree.Total()
}

// Prices returns the catalog in ascending order.
func (w *Workload) Prices() []int64 {
	return append([]int64(nil), w.prices...)
}

// Clone returns a workload sharing the immutable catalog but owning
// its own trees, so it can answer queries alongside w.
func (w *Workload) Clone() *Workload {
	return &Workload{
		prices:    w.prices,
		rank:      w.rank,
		priceTree: w.priceTree.Clone(),
		countTree: w.countTree.Clone(),
		marked:    make([]bool, len(w.marked)),
		workers:   w.workers,
		logger:    w.logger,
	}
}

// AnswerQuery is Answer for a Query value.
func (w *Workload) AnswerQuery(q Query) (int, error) {
	return w.Answer(q.Budget, q.Excluded)
}

// Answer returns how many toys budget buys, cheapest first, when the
// toys at the 1-based original positions in excluded are broken.
//
// An invalid query is rejected with ErrInvalidQuery before anything is
// touched. A valid query leaves no trace on the workload.
func (w *Workload) Answer(budget int64, excluded []int) (int, error) {
	positions, err := w.validate(budget, excluded)
	if err != nil {
		w.logger.V(5).Info("Rejected query", "budget", budget, "broken", len(excluded), "err", err)
		return 0, err
	}

	w.knockOut(positions)
	defer w.restore(positions)

	m := w.affordablePrefix(budget)
	return int(w.countTree.PrefixAggregate(m)), nil
}

// validate checks the query and translates its exclusions to sorted
// positions.
func (w *Workload) validate(budget int64, excluded []int) ([]int, error) {
	if budget < 0 {
		return nil, errors.Wrapf(ErrInvalidQuery, "negative budget %d", budget)
	}
	if len(excluded) > len(w.prices) {
		return nil, errors.Wrapf(ErrInvalidQuery, "%d toys broken, catalog holds %d", len(excluded), len(w.prices))
	}

	positions := make([]int, 0, len(excluded))
	defer func() {
		for _, p := range positions {
			w.marked[p] = false
		}
	}()

	for _, oi := range excluded {
		if oi < 1 || oi > len(w.prices) {
			return nil, errors.Wrapf(ErrInvalidQuery, "broken toy %d not in [1, %d]", oi, len(w.prices))
		}
		p := w.rank[oi-1]
		if w.marked[p] {
			return nil, errors.Wrapf(ErrInvalidQuery, "toy %d broken twice", oi)
		}
		w.marked[p] = true
		positions = append(positions, p)
	}
	return positions, nil
}

func (w *Workload) knockOut(positions []int) {
	for _, p := range positions {
		w.priceTree.Add(p, -w.prices[p])
		w.countTree.Add(p, -1)
	}
}

func (w *Workload) restore(positions []int) {
	for _, p := range positions {
		w.priceTree.Add(p, w.prices[p])
		w.countTree.Add(p, 1)
	}
}

// affordablePrefix returns the last sorted position whose prefix price
// fits in budget, or -1 when not even the first one does.
func (w *Workload) affordablePrefix(budget int64) int {
	return sort.Search(len(w.prices), func(m int) bool {
		return w.priceTree.PrefixAggregate(m) > budget
	}) - 1
}

// AnswerQueries answers every query in order. A rejected query gets
// Rejected in its slot and the batch goes on; the returned error is
// then a BatchError naming every rejected query.
func (w *Workload) AnswerQueries(queries []Query) ([]int, error) {
	answers := make([]int, len(queries))
	var rejected BatchError
	for i, q := range queries {
		n, err := w.AnswerQuery(q)
		if err != nil {
			answers[i] = Rejected
			rejected = append(rejected, &QueryError{Index: i, Err: err})
			continue
		}
		answers[i] = n
	}

	w.logger.V(4).Info("Answered queries", "queries", len(queries), "rejected", len(rejected))
	return answers, rejected.orNil()
}
