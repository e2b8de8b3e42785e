// Package chain provides a fluent wrapper around rop.Outcome[S, E]
// for building asynchronous Railway-Oriented chains using async primitives.
//
// Each step awaits its transformation once, in the order written. A
// transformation error stops the chain: later steps are not invoked and the
// error is reported by Result or by the terminal function.
//
// Key operations:
// - Start/FromValue: begin a chain from an outcome or value
// - Map/AndThen/OrElse/Inspect/InspectErr (methods): steps that keep types
// - Map/MapErr/Then/Recover (functions): steps that change a payload type
// - UnwrapOrElse/MapOr/MapOrElse/IsOkAnd/IsErrAnd: collapse the chain
package chain
