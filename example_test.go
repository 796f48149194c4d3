package brokentoys_test

import (
	"fmt"

	brokentoys "github.com/caio/go-brokentoys"
)

func ExampleWorkload_Answer() {
	w, err := brokentoys.New([]int64{9, 7, 2, 1, 9, 4, 2, 9, 5, 8})
	if err != nil {
		panic(err)
	}

	// Toys 6 and 7 (prices 4 and 2) are broken.
	n, _ := w.Answer(1, []int{6, 7})
	fmt.Println(n)

	// Toy 10 (price 8) is broken: 1 + 2 + 2 + 4 fits a budget of 9.
	n, _ = w.Answer(9, []int{10})
	fmt.Println(n)
	// Output:
	// 1
	// 4
}

func ExampleWorkload_AnswerQueries() {
	w, _ := brokentoys.New([]int64{10, 8, 10, 5, 5, 7, 7, 10, 10, 6})

	answers, err := w.AnswerQueries([]brokentoys.Query{
		{Budget: 4, Excluded: []int{1, 9, 3, 7, 2, 8}},
		{Budget: 8, Excluded: []int{2, 4, 1, 7}},
		{Budget: 8, Excluded: []int{2, 2}},
	})
	fmt.Println(answers)
	fmt.Println(err)
	// Output:
	// [0 1 -1]
	// query 3: toy 2 broken twice: brokentoys: invalid query
}
