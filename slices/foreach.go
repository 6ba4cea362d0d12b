package slices

import "iter"

// ForEach calls consume once for every element of s, in order.
func ForEach[T any](s []T, consume func(T)) {
	for _, elem := range s {
		consume(elem)
	}
}

// ForEachErr stops at the first error returned by consume and hands it back
// unchanged; the remaining elements are skipped.
func ForEachErr[T any](s []T, consume func(T) error) error {
	for _, elem := range s {
		if err := consume(elem); err != nil {
			return err
		}
	}
	return nil
}

func ForEachSeq[T any](seq iter.Seq[T], consume func(T)) {
	for elem := range seq {
		consume(elem)
	}
}
