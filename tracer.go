package harpocrates

import (
	"fmt"
	"strings"
	"sync"

	"github.com/DE-labtory/iLogger"
)

type Tracer interface {
	Log(keyvals ...string)
	Trace()
}

// MemCacheTracer buffers key=val traces in memory until Trace flushes them.
type MemCacheTracer struct {
	lock      sync.RWMutex
	traceList []string
}

func NewMemCacheTracer() *MemCacheTracer {
	return &MemCacheTracer{
		lock:      sync.RWMutex{},
		traceList: make([]string, 0),
	}
}

func (t *MemCacheTracer) Log(keyvals ...string) {
	t.lock.Lock()
	defer t.lock.Unlock()
	if len(keyvals) == 0 {
		return
	}
	if len(keyvals)%2 == 1 {
		keyvals = append(keyvals, "")
	}

	kvs := make([]string, 0)

	for i := 0; i < len(keyvals); i += 2 {
		k, v := keyvals[i], keyvals[i+1]
		kvs = append(kvs, fmt.Sprintf("%s=%s", k, v))
	}
	trace := strings.Join(kvs, " ")
	t.traceList = append(t.traceList, trace)
}

func (t *MemCacheTracer) Trace() {
	t.lock.Lock()
	defer t.lock.Unlock()

	for _, trace := range t.traceList {
		iLogger.Info(nil, trace)
	}
}

// Traces returns a copy of the buffered traces without flushing them.
func (t *MemCacheTracer) Traces() []string {
	t.lock.RLock()
	defer t.lock.RUnlock()

	result := make([]string, len(t.traceList))
	copy(result, t.traceList)
	return result
}
