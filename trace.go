package postfix

import (
	"sync"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var (
	fallbackOnce   sync.Once
	fallbackTracer tracing.Trace
)

// tracer traces to the global core tracer. If none has been installed, errors
// go to the standard logger and everything else is dropped.
func tracer() tracing.Trace {
	if t := gtrace.CoreTracer; t != nil {
		return t
	}
	fallbackOnce.Do(func() {
		fallbackTracer = gologadapter.New()
		fallbackTracer.SetTraceLevel(tracing.LevelError)
	})
	return fallbackTracer
}
