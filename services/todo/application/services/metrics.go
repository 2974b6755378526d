package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/ghuser/todolists/services/todo"

// instruments are the counters the todo use cases record. They report
// through whichever MeterProvider telemetry.Setup installed; before that the
// global no-op provider swallows them.
type instruments struct {
	itemsCreated   metric.Int64Counter
	itemsCompleted metric.Int64Counter
	itemsDeleted   metric.Int64Counter
	listsCreated   metric.Int64Counter
	listsDeleted   metric.Int64Counter
	listsCompleted metric.Int64Counter
}

func newInstruments() *instruments {
	m := otel.Meter(meterName)
	return &instruments{
		itemsCreated:   counter(m, "todo.items.created", "Items created"),
		itemsCompleted: counter(m, "todo.items.completion_changed", "Item completion flag updates"),
		itemsDeleted:   counter(m, "todo.items.deleted", "Items deleted, including by list cascade"),
		listsCreated:   counter(m, "todo.lists.created", "Lists created"),
		listsDeleted:   counter(m, "todo.lists.deleted", "Lists deleted"),
		listsCompleted: counter(m, "todo.lists.completed", "Lists marked completed"),
	}
}

func counter(m metric.Meter, name, desc string) metric.Int64Counter {
	c, err := m.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		return noop.Int64Counter{}
	}
	return c
}

func add(ctx context.Context, c metric.Int64Counter, n int64, attrs ...attribute.KeyValue) {
	if n <= 0 {
		return
	}
	c.Add(ctx, n, metric.WithAttributes(attrs...))
}
