// Package sortutil provides a generic in-place randomized quicksort.
//
// The sort uses a three-way partition around a uniformly random pivot, so inputs
// with many keys that compare equal do not degrade it. It is not stable: elements
// that are equal under the ordering may be reordered.
package sortutil

import (
	"math/rand/v2"
)

// Sort sorts elements in place using the global random source.
// less reports whether a must sort before b and must define a strict weak ordering.
func Sort[T any](elements []T, less func(a, b T) bool) {
	qsort(elements, 0, len(elements), less, rand.IntN)
}

// SortWithRand sorts elements in place, drawing pivots from r.
// A seeded r makes the sequence of swaps reproducible.
func SortWithRand[T any](elements []T, less func(a, b T) bool, r *rand.Rand) {
	if r == nil {
		Sort(elements, less)
		return
	}
	qsort(elements, 0, len(elements), less, r.IntN)
}

func qsort[T any](elements []T, lo, hi int, less func(a, b T) bool, intn func(int) int) {
	if hi < lo+2 {
		return
	}
	pivot := lo + intn(hi-lo)
	left, right := partition(elements, lo, hi, pivot, less)
	qsort(elements, lo, left, less, intn)
	qsort(elements, right, hi, less, intn)
}

// partition rearranges elements[lo:hi] around the value at pivotIndex and returns
// the bounds of the band holding the pivot and everything equal to it:
//
//	| x < p | ... | p | p | ... | p | x > p | ...
//	              ^                 ^
//	            left              right
func partition[T any](elements []T, lo, hi, pivotIndex int, less func(a, b T) bool) (int, int) {
	numLess := 0
	for i := lo; i < hi; i++ {
		if less(elements[i], elements[pivotIndex]) {
			numLess++
		}
	}
	pivotPos := lo + numLess
	elements[pivotPos], elements[pivotIndex] = elements[pivotIndex], elements[pivotPos]

	lessEnd := lo
	for i := lo; i < hi; i++ {
		if less(elements[i], elements[pivotPos]) {
			elements[lessEnd], elements[i] = elements[i], elements[lessEnd]
			lessEnd++
		}
	}

	equalEnd := pivotPos + 1
	for i := pivotPos + 1; i < hi; i++ {
		if !less(elements[i], elements[pivotPos]) && !less(elements[pivotPos], elements[i]) {
			elements[equalEnd], elements[i] = elements[i], elements[equalEnd]
			equalEnd++
		}
	}

	return lessEnd, equalEnd
}
