// Package solo contains the synchronous combinators over rop.Outcome. They
// are the reference behavior the async package mirrors.
//
// Highlights:
// - Succeed/Fail: construct an error-typed Result[T]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Map/MapErr/MapOr/MapOrElse: transform either payload
// - Inspect/InspectErr: side-effect helpers
// - AndThen/OrElse: chain into a new outcome
// - UnwrapOrElse, IsOkAnd, IsErrAnd: extract or test the payload
// - Try: call a function (Out, error) and convert error to failure
// - Finally: reduce to a concrete value via success/failure handlers
package solo
