//    EarningsCallTopics
//    Copyright: Fin-Corpora 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"slices"
)

//
// SETS AND SLICES
//

// ToSet - returns a blank map of a slice
func ToSet[T comparable](sl []T) map[T]struct{} {
	m := make(map[T]struct{})
	for i := 0; i < len(sl); i++ {
		m[sl[i]] = struct{}{}
	}
	return m
}

// Unique - return only the unique items from a slice
func Unique[T comparable](s []T) []T {
	// can't use slices.Compact because that only looks at consecutive repeats: [a, a, b, a] -> [a, b, a]
	set := ToSet(s)

	var result []T
	for k := range set {
		result = append(result, k)
	}

	return result
}

// UniqueStable - unique items in first-seen order; costs a map but keeps the sequence
func UniqueStable[T comparable](s []T) []T {
	seen := make(map[T]struct{})
	result := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// SetSubtraction - remove every b in bb from aa
func SetSubtraction[T comparable](aa []T, bb []T) []T {
	//  aa := []string{"a", "b", "c", "d", "g", "h"}
	//	bb := []string{"a", "b", "e", "f", "g"}
	//  SetSubtraction(aa, bb) --> [c d h]

	bb = Unique(bb)

	aa = slices.DeleteFunc(aa, func(c T) bool {
		return slices.Contains(bb, c)
	})

	return aa
}

// Flatten - walk nested slices without recursing: [][]T --> []T
func Flatten[T any](lists [][]T) []T {
	// the corpus is a slice of lemma documents; the cloud counts one flat list
	tot := 0
	for _, l := range lists {
		tot += len(l)
	}

	res := make([]T, 0, tot)
	stack := lists
	for len(stack) > 0 {
		next := stack[0]
		stack = stack[1:]
		res = append(res, next...)
	}
	return res
}

// StringMapKeysIntoSlice - convert map[string]T to []string
func StringMapKeysIntoSlice[T any](mp map[string]T) []string {
	sl := make([]string, len(mp))
	i := 0
	for k := range mp {
		sl[i] = k
		i += 1
	}
	return sl
}

// ChunkSlice - turn a slice into a slice of slices of size N; thanks to https://stackoverflow.com/questions/35179656/slice-chunking-in-go
func ChunkSlice[T any](items []T, size int) (chunks [][]T) {
	for size < len(items) {
		items, chunks = items[size:], append(chunks, items[0:size:size])
	}
	return append(chunks, items)
}
