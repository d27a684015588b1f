package main

import (
	"iter"
	"slices"
)

// ascendingPartitions yields every partition of n with parts in
// ascending order, e.g. 4: [1 1 1 1] [1 1 2] [1 3] [2 2] [4]
func ascendingPartitions(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if n < 1 {
			return
		}
		a := make([]int, n+1)
		k := 1
		y := n - 1
		for k != 0 {
			x := a[k-1] + 1
			k -= 1
			for 2*x <= y {
				a[k] = x
				y -= x
				k += 1
			}
			l := k + 1
			for x <= y {
				a[k] = x
				a[l] = y
				if yield(slices.Clone(a[:k+2])) != true {
					return
				}
				x += 1
				y -= 1
			}
			a[k] = x + y
			y = x + y - 1
			if yield(slices.Clone(a[:k+1])) != true {
				return
			}
		}
	}
}
