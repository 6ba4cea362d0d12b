package slices

import "iter"

func ToMap[K comparable, T, V any](s []T, makeElem func(T) (K, V)) map[K]V {
	m := make(map[K]V, len(s))

	for _, elem := range s {
		k, v := makeElem(elem)
		m[k] = v
	}

	return m
}

// Map returns a new slice of len(s) where the i-th element is
// transformElem(s[i]).
func Map[T, V any](s []T, transformElem func(T) V) []V {
	m := make([]V, len(s))

	for i, elem := range s {
		v := transformElem(elem)
		m[i] = v
	}

	return m
}

// MapErr is Map with a fallible transform. Elements after the first failure
// are not transformed.
func MapErr[T, V any](s []T, transformElem func(T) (V, error)) ([]V, error) {
	m := make([]V, len(s))

	for i, elem := range s {
		v, err := transformElem(elem)
		if err != nil {
			return nil, err
		}
		m[i] = v
	}

	return m, nil
}

func MapSeq[T, V any](seq iter.Seq[T], transformElem func(T) V) []V {
	m := make([]V, 0)

	for elem := range seq {
		m = append(m, transformElem(elem))
	}

	return m
}

func Reduce[A, T any](s []T, initial A, f func(acc A, value T) A) A {
	for _, val := range s {
		initial = f(initial, val)
	}
	return initial
}
