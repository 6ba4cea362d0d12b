package slices

import "iter"

// Filter returns a new slice holding the elements of s for which keep
// reports true, in their original order. s is never modified.
func Filter[T any](s []T, keep func(T) bool) []T {
	m := make([]T, 0, len(s))

	for _, elem := range s {
		if keep(elem) {
			m = append(m, elem)
		}
	}

	return m
}

// FilterErr is Filter with a fallible predicate. The first error stops the
// iteration and is returned as is.
func FilterErr[T any](s []T, keep func(T) (bool, error)) ([]T, error) {
	m := make([]T, 0, len(s))

	for _, elem := range s {
		ok, err := keep(elem)
		if err != nil {
			return nil, err
		}
		if ok {
			m = append(m, elem)
		}
	}

	return m, nil
}

func FilterSeq[T any](seq iter.Seq[T], keep func(T) bool) []T {
	m := make([]T, 0)

	for elem := range seq {
		if keep(elem) {
			m = append(m, elem)
		}
	}

	return m
}
