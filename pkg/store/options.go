package store

import (
	"context"
	"log/slog"
	"time"
)

// Option configures ambient store settings.
type Option func(*options)

type options struct {
	cfg    Config
	logger *slog.Logger
	parent context.Context
}

func defaultOptions() *options {
	return &options{
		cfg:    DefaultConfig(),
		logger: slog.Default(),
		parent: context.Background(),
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithName sets the store name used in logs.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.cfg.Name = name
		}
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithContext ties the store lifetime to ctx: cancelling it disposes the store.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.parent = ctx
		}
	}
}

// WithActionRate limits processed actions to perSecond with the given burst.
func WithActionRate(perSecond float64, burst int) Option {
	return func(o *options) {
		o.cfg.ActionRate = perSecond
		o.cfg.ActionBurst = burst
	}
}

// WithMaxReactions caps concurrently drained reaction sequences.
func WithMaxReactions(n int) Option {
	return func(o *options) {
		o.cfg.MaxReactions = n
	}
}

// WithDrainTimeout bounds how long Close waits for the pipeline to stop.
func WithDrainTimeout(d time.Duration) Option {
	return func(o *options) {
		o.cfg.DrainTimeout = d
	}
}
