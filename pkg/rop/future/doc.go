// Package future provides an explicit, settle-once handle for a computation
// running on another goroutine.
//
// A Future is created already settled (Resolved, Rejected) or by Go, which
// starts a function and settles with whatever it returns. A panic inside that
// function settles the future with a *PanicError instead of crashing the
// process. Await blocks until the future settles or the caller's context is
// done.
package future
