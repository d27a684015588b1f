package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAscendingPartitions(t *testing.T) {
	t.Run("4", func(tt *testing.T) {
		got := [][]int{}
		for p := range ascendingPartitions(4) {
			got = append(got, p)
		}
		expect := [][]int{{1, 1, 1, 1}, {1, 1, 2}, {1, 3}, {2, 2}, {4}}
		if cmp.Equal(got, expect) != true {
			tt.Errorf("%v != %v", got, expect)
		}
	})
	t.Run("counts", func(tt *testing.T) {
		expect := []int{1, 2, 3, 5, 7, 11, 15, 22, 30, 42}
		for n := 1; n <= len(expect); n += 1 {
			count := 0
			for range ascendingPartitions(n) {
				count += 1
			}
			if count != expect[n-1] {
				tt.Errorf("p(%d) = %d, want %d", n, count, expect[n-1])
			}
		}
	})
	t.Run("0", func(tt *testing.T) {
		for p := range ascendingPartitions(0) {
			tt.Errorf("unexpected %v", p)
		}
	})
}
