package middleware

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/storekit/pkg/logger"
)

// Filter drops values for which keep returns false.
func Filter[S, T any](keep func(S, T) bool) Middleware[S, T] {
	return func(state StateFunc[S]) func(Dispatch[T]) Dispatch[T] {
		return func(next Dispatch[T]) Dispatch[T] {
			return func(v T) T {
				if !keep(state(), v) {
					return v
				}
				return next(v)
			}
		}
	}
}

// Map rewrites every value before passing it on.
func Map[S, T any](fn func(S, T) T) Middleware[S, T] {
	return func(state StateFunc[S]) func(Dispatch[T]) Dispatch[T] {
		return func(next Dispatch[T]) Dispatch[T] {
			return func(v T) T {
				return next(fn(state(), v))
			}
		}
	}
}

// Tap observes every value without changing it.
func Tap[S, T any](fn func(S, T)) Middleware[S, T] {
	return func(state StateFunc[S]) func(Dispatch[T]) Dispatch[T] {
		return func(next Dispatch[T]) Dispatch[T] {
			return func(v T) T {
				fn(state(), v)
				return next(v)
			}
		}
	}
}

// Logging writes a debug record for every value passing through the leg.
func Logging[S, T any](log *slog.Logger, leg string) Middleware[S, T] {
	if log == nil {
		log = slog.Default()
	}
	return func(state StateFunc[S]) func(Dispatch[T]) Dispatch[T] {
		return func(next Dispatch[T]) Dispatch[T] {
			return func(v T) T {
				log.Debug("dispatch", logger.Leg(leg), logger.Value(v))
				return next(v)
			}
		}
	}
}

// Recover stops a panic raised further down the chain, logs it and drops the value.
// Place it first to protect the whole leg.
func Recover[S, T any](log *slog.Logger, leg string) Middleware[S, T] {
	if log == nil {
		log = slog.Default()
	}
	return func(state StateFunc[S]) func(Dispatch[T]) Dispatch[T] {
		return func(next Dispatch[T]) Dispatch[T] {
			return func(v T) (out T) {
				defer func() {
					if r := recover(); r != nil {
						log.Error("middleware panic recovered",
							logger.Leg(leg),
							logger.Value(v),
							logger.Error(fmt.Errorf("panic: %v", r)))
						out = v
					}
				}()
				return next(v)
			}
		}
	}
}
