// Package async contains the asynchronous counterparts of the solo
// combinators. Each function takes a rop.Outcome and a transformation that
// returns a future, and awaits that future at most once, only when the
// receiver's branch needs it.
//
// Operations:
// - Map/MapErr: transform the success or failure payload
// - MapOr/MapOrElse: reduce to a plain value (eager or lazy default)
// - Inspect/InspectErr: side effects that leave the outcome untouched
// - AndThen/OrElse: chain into a new outcome
// - UnwrapOrElse: extract the success payload or compute a replacement
// - IsOkAnd/IsErrAnd: predicates on the matching branch
//
// A transformation's failure (a rejected future, or ctx ending while it is
// awaited) is returned as the combinator's error exactly as produced. The
// combinators never retry, wrap or recover it.
//
// Lift, LiftEffect and Pure adapt ordinary functions into transformations.
// When ctx carries an observer (see core.WithObserver), one record is
// reported per call.
package async
