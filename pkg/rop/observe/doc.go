// Package observe defines the hook through which combinator calls are
// reported. Implementations live in the logobs, promobs and otelobs
// sub-packages; install one with core.WithObserver.
package observe
