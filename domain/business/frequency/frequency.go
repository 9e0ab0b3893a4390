package frequency

import (
	"cmp"
	"slices"
)

// ValueCount pairs a value of a column with the amount of times it appears
type ValueCount[K cmp.Ordered] struct {
	Value K   `json:"value"`
	Count int `json:"count"`
}

// Counter counts the occurrences of each value of a column. It remembers the order in which
// values were seen for the first time, that order is used to break ties.
type Counter[K cmp.Ordered] struct {
	counts map[K]int
	order  []K
	total  int
}

func NewCounter[K cmp.Ordered]() *Counter[K] {
	return &Counter[K]{
		counts: make(map[K]int),
	}
}

func (c *Counter[K]) Add(value K) {
	if _, ok := c.counts[value]; !ok {
		c.order = append(c.order, value)
	}
	c.counts[value] += 1
	c.total += 1
}

// GetTotal returns the amount of values added
func (c *Counter[K]) GetTotal() int {
	return c.total
}

// Len returns the amount of distinct values
func (c *Counter[K]) Len() int {
	return len(c.order)
}

// Top returns the most frequent value. Among ties the first value seen wins.
func (c *Counter[K]) Top() (ValueCount[K], bool) {
	if c.Len() == 0 {
		return ValueCount[K]{}, false
	}

	top := ValueCount[K]{Value: c.order[0], Count: c.counts[c.order[0]]}
	for _, value := range c.order[1:] {
		if c.counts[value] > top.Count {
			top = ValueCount[K]{Value: value, Count: c.counts[value]}
		}
	}
	return top, true
}

// Mode returns the most frequent value. Among ties the smallest value wins.
func (c *Counter[K]) Mode() (ValueCount[K], bool) {
	if c.Len() == 0 {
		return ValueCount[K]{}, false
	}

	mode := ValueCount[K]{Value: c.order[0], Count: c.counts[c.order[0]]}
	for _, value := range c.order[1:] {
		count := c.counts[value]
		if count > mode.Count || (count == mode.Count && value < mode.Value) {
			mode = ValueCount[K]{Value: value, Count: count}
		}
	}
	return mode, true
}

// Ranking returns every value sorted by count, descending. Ties keep first seen order.
func (c *Counter[K]) Ranking() []ValueCount[K] {
	ranking := make([]ValueCount[K], 0, len(c.order))
	for _, value := range c.order {
		ranking = append(ranking, ValueCount[K]{Value: value, Count: c.counts[value]})
	}

	slices.SortStableFunc(ranking, func(a, b ValueCount[K]) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return ranking
}
