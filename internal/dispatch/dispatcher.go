package dispatch

import (
	"fmt"
	"time"

	"github.com/espanso/espanso-core/internal/event"
)

// Dispatcher routes terminal events to their registered executors.
type Dispatcher struct {
	registry *Registry
	config   Config
	metrics  *Metrics
}

// New creates a Dispatcher with the given configuration.
func New(config Config) *Dispatcher {
	d := &Dispatcher{
		registry: NewRegistry(),
		config:   config,
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// NewWithDefaults creates a Dispatcher with DefaultConfig.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig())
}

// Register binds the executor for the event type named by typeName (see
// the Type* constants in executor.go).
func (d *Dispatcher) Register(typeName string, e Executor) {
	d.registry.Register(typeName, e)
}

// Has reports whether an executor is registered for ev's dynamic type.
func (d *Dispatcher) Has(ev event.Type) bool {
	return d.registry.Has(TypeName(ev))
}

// Metrics returns the dispatcher's metrics collector, or nil if metrics
// were not enabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Dispatch routes ev to its registered executor and returns the outcome.
// If RecoverFromPanic is set, a panicking executor yields a StatusError
// Result wrapping ErrExecutorPanic instead of propagating the panic.
func (d *Dispatcher) Dispatch(ev event.Type) (result Result) {
	typeName := TypeName(ev)
	exec := d.registry.Get(typeName)
	if exec == nil {
		return Error(fmt.Errorf("%w: %s", ErrNoExecutor, typeName))
	}

	start := time.Now()
	panicked := false

	if d.config.RecoverFromPanic {
		defer func() {
			if r := recover(); r != nil {
				panicked = true
				result = Error(fmt.Errorf("%w: %v", ErrExecutorPanic, r))
			}
			if d.metrics != nil {
				d.metrics.Record(typeName, time.Since(start), result.Status, panicked)
			}
		}()
	} else if d.metrics != nil {
		defer func() {
			d.metrics.Record(typeName, time.Since(start), result.Status, panicked)
		}()
	}

	result = exec.Execute(ev)
	return result
}
