package test_utils

import (
	"fmt"
	"runtime"
	"strings"
	"testing"
	"time"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
)

type assertion struct {
	head           *assertion
	id             string
	description    string
	assertion      func()
	shouldAssert   bool
	next           *assertion
	noAssertionLog bool
}

// Assertable chains test cases so a group reads top-down and runs in order.
type Assertable interface {
	ThenWithDescription(id string, description string, assertion func()) Assertable
	Then(id string, assertion func()) Assertable
	Cases(cases ...*assertion) Assertable
	NoAssertionLog() Assertable
	Do(t *testing.T)
}

func New(id string, assertionCase func()) *assertion {
	return NewWithDescription(id, "", assertionCase)
}

func NewWithDescription(id string, description string, assertionCase func()) *assertion {
	a := &assertion{
		id:           id,
		description:  description,
		assertion:    assertionCase,
		shouldAssert: true,
	}
	a.head = a
	return a
}

func NewGroup(id string, description string) Assertable {
	a := &assertion{
		id:          id,
		description: description,
	}
	a.head = a
	return a
}

func (a *assertion) Then(id string, assertionCase func()) Assertable {
	a.next = &assertion{
		head:         a.head,
		id:           id,
		assertion:    assertionCase,
		shouldAssert: true,
	}
	return a.next
}

func (a *assertion) ThenWithDescription(id string, description string, assertionCase func()) Assertable {
	a.next = &assertion{
		head:         a.head,
		id:           id,
		description:  description,
		assertion:    assertionCase,
		shouldAssert: true,
	}
	return a.next
}

func (a *assertion) NoAssertionLog() Assertable {
	a.head.noAssertionLog = true
	return a
}

func (a *assertion) Cases(cases ...*assertion) Assertable {
	curr := a
	for _, c := range cases {
		if c != nil {
			curr.next = c
			c.head = curr.head
			curr = c
		}
	}
	return curr
}

func getIndentations(level int) string {
	return strings.Repeat(" ", level)
}

func (a *assertion) Do(t *testing.T) {
	t.Helper()
	startTime := time.Now()
	curr := a.head
	indent := 0
	for curr != nil {
		if curr.shouldAssert {
			t.Logf("%sRunning case %s%s\n", getIndentations(indent), curr.id, getDescription(curr))
		} else {
			t.Logf("%sRunning group %s%s\n", getIndentations(indent), curr.id, getDescription(curr))
		}
		if curr.assertion != nil {
			if a.head.noAssertionLog {
				doAssertCase(t, false, indent, curr.id, curr.assertion)
			} else {
				doAssertCase(t, true, indent, curr.id, curr.assertion)
			}
		} else {
			indent += 2
		}
		curr = curr.next
	}
	t.Log("All test finished, overall runtime: ", time.Since(startTime))
}

// doAssertCase reports a failed case through t even when logging is off.
func doAssertCase(t *testing.T, logPass bool, indent int, id string, assertion func()) (res bool) {
	res = true
	defer func() {
		errorMessage := ""
		if recovered := recover(); recovered != nil {
			res = false
			if isAssertionFailurePanic(recovered) {
				errorMessage = recovered.(string)
			} else {
				errorMessage = fmt.Sprintf("panic recovered: %v, call stack trace: \n%s", recovered, getCallers())
			}
		}
		if res {
			if logPass {
				t.Logf("%s✅ %s passed\n", getIndentations(indent), id)
			}
			return
		}
		t.Errorf("%s❌ %s failed\n", getIndentations(indent), id)
		t.Error(colorRed + errorMessage + colorReset)
	}()
	assertion()
	return
}

func getCallers() string {
	callers := ""
	for i := 0; true; i++ {
		_, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		callers = callers + fmt.Sprintf("%s%v:%v\n", getIndentations(i*2), file, line)
	}
	return callers
}

func getDescription(a *assertion) string {
	if a.description == "" {
		return ""
	}
	return "[" + a.description + "]"
}
