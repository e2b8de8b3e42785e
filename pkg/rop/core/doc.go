// Package core carries call options on a context.Context: the observer that
// receives one record per combinator call and an optional stage name used to
// label those records. Nothing here changes combinator semantics.
package core
