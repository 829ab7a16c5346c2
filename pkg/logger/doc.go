// Package logger builds slog loggers for stores and their collaborators.
//
// New creates a *slog.Logger configured with Option functions (output format,
// level, static attributes, context extractors). The handler is wrapped with
// ContextHandler, which adds every attribute stored in the context with
// WithAttrs. Stores use this to tag the context handed to reactors with the
// store name, instance id and current action, so a reactor that logs with
// InfoContext gets those attributes for free.
//
// # Usage
//
//	log := logger.New(logger.WithDevelopment("counter"))
//
//	ctx := logger.WithAttrs(context.Background(), logger.Store("counter"))
//	log.InfoContext(ctx, "reduced", logger.Mutation(m), logger.Duration(elapsed))
//
// Helper constructors such as Error, Leg, Action or Mutation keep attribute
// keys consistent. Error and Errors return an empty attribute for nil errors,
// so they can be passed without a nil check.
package logger
