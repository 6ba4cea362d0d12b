package test_utils

import (
	"fmt"
	"strings"
)

const (
	assertionFailureError = "assertion failure: "
)

func AssertSlicesEqual[T comparable](l []T, r []T) {
	if len(l) != len(r) {
		panic(assertionFailureError + fmt.Sprintf("length %d and %d are not equal (%v vs %v)", len(l), len(r), l, r))
	}
	for i := range l {
		if l[i] != r[i] {
			panic(assertionFailureError + fmt.Sprintf("%v and %v differ at index %d", l, r, i))
		}
	}
}

func AssertNil(val interface{}) {
	if val != nil {
		panic(assertionFailureError + fmt.Sprintf("value %v isn't nil", val))
	}
}

func AssertNonNil(val interface{}) {
	if val == nil {
		panic(assertionFailureError + fmt.Sprintf("value %v is nil", val))
	}
}

func AssertStringEmpty(val string) {
	AssertEquals(val, "")
}

func AssertTrue(val bool) {
	if !val {
		panic(assertionFailureError + "value isn't true")
	}
}

func AssertFalse(val bool) {
	if val {
		panic(assertionFailureError + "value isn't false")
	}
}

func AssertPanic(cb func()) {
	defer func() {
		recovered := recover()
		if recovered == nil {
			panic(assertionFailureError + "no panic value is recovered")
		}
	}()
	cb()
}

func AssertPanicValue[T comparable](cb func(), expected T) {
	defer func() {
		recovered := recover()
		if recovered == nil {
			panic(assertionFailureError + "no panic value is recovered")
		}
		converted, ok := recovered.(T)
		if !ok {
			panic(assertionFailureError + "unable to cast recovered panic value to the expected type")
		}
		AssertEquals(converted, expected)
	}()
	cb()
}

func AssertEquals[T comparable](l T, r T) {
	if l != r {
		panic(assertionFailureError + fmt.Sprintf("%v and %v are not equal", l, r))
	}
}

func isAssertionFailurePanic(recovered interface{}) bool {
	if panicString, ok := recovered.(string); ok {
		return strings.HasPrefix(panicString, assertionFailureError)
	}
	return false
}
