package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Store records the store name under the key "store".
func Store(name string) slog.Attr {
	return slog.String("store", name)
}

// StoreID records the store instance identifier under the key "store_id".
// If id is nil, it returns an empty Attr.
func StoreID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("store_id", id)
}

// Leg records the pipeline leg (action, react, mutation, event, error, state).
func Leg(name string) slog.Attr {
	return slog.String("leg", name)
}

// Kind records a reaction kind under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Value records an arbitrary dispatched value under the key "value".
func Value(v any) slog.Attr {
	return slog.Any("value", v)
}

// Action records an action under the key "action".
func Action(a any) slog.Attr {
	return slog.Any("action", a)
}

// Mutation records a mutation under the key "mutation".
func Mutation(m any) slog.Attr {
	return slog.Any("mutation", m)
}

// Event records an event under the key "event".
func Event(e any) slog.Attr {
	return slog.Any("event", e)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
