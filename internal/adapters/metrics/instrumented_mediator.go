package metrics

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/lbruckner/palletsim/internal/application/common"
)

// InstrumentedMediator decorates a mediator and records execution duration
// and outcome of every command and query. Command names come from the
// request type with the package prefix stripped, so
// "*commands.AdvanceRoundCommand" is reported as "AdvanceRoundCommand".
type InstrumentedMediator struct {
	inner     common.Mediator
	collector *CommandMetricsCollector
}

// NewInstrumentedMediator wraps the given mediator. A nil collector leaves
// the mediator untouched, for runs with metrics disabled.
func NewInstrumentedMediator(inner common.Mediator, collector *CommandMetricsCollector) common.Mediator {
	if collector == nil {
		return inner
	}
	return &InstrumentedMediator{inner: inner, collector: collector}
}

// Register registers a handler with the wrapped mediator
func (m *InstrumentedMediator) Register(requestType reflect.Type, handler common.RequestHandler) error {
	return m.inner.Register(requestType, handler)
}

// Send dispatches the request and records its execution
func (m *InstrumentedMediator) Send(ctx context.Context, request common.Request) (common.Response, error) {
	start := time.Now()
	response, err := m.inner.Send(ctx, request)
	m.collector.RecordCommandExecution(commandName(request), time.Since(start).Seconds(), err == nil)
	return response, err
}

func commandName(request common.Request) string {
	if request == nil {
		return "unknown"
	}
	name := reflect.TypeOf(request).String()
	name = strings.TrimPrefix(name, "*")
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
