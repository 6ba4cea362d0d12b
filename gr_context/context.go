// Package gr_context keeps values scoped to the calling goroutine.
package gr_context

import (
	"strconv"
	"strings"
	"sync"

	"github.com/petermattis/goid"
)

var (
	lock    sync.RWMutex
	context = map[string]interface{}{}
)

func Put(key string, v interface{}) {
	lock.Lock()
	defer lock.Unlock()
	context[getGoID()+key] = v
}

func Get(key string) interface{} {
	lock.RLock()
	defer lock.RUnlock()
	return context[getGoID()+key]
}

// GetByPrefix returns the current goroutine's entries whose key starts with
// prefix. Returned keys have the goroutine id stripped.
func GetByPrefix(prefix string) map[string]interface{} {
	id := getGoID()
	res := make(map[string]interface{})
	lock.RLock()
	defer lock.RUnlock()
	for k, v := range context {
		if strings.HasPrefix(k, id+prefix) {
			res[k[len(id):]] = v
		}
	}
	return res
}

func Delete(key string) {
	lock.Lock()
	defer lock.Unlock()
	delete(context, getGoID()+key)
}

func Clear() {
	ClearByPrefix("")
}

func ClearByPrefix(prefix string) {
	id := getGoID()
	lock.Lock()
	defer lock.Unlock()
	for k := range context {
		if strings.HasPrefix(k, id+prefix) {
			delete(context, k)
		}
	}
}

// ids are suffixed with ':' so goroutine 1 never sees the keys of goroutine 12
func getGoID() string {
	return strconv.FormatInt(goid.Get(), 10) + ":"
}
