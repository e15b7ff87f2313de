// Package random provides the shared, goroutine-safe random source used by the
// text generators.
//
// Default returns a process-wide source backed by github.com/valyala/fastrand,
// which needs no locking. NewSeeded returns a deterministic source for tests;
// it serialises access with a mutex so it can still be shared. None of the
// sources are cryptographically secure.
package random
