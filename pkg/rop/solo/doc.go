// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. They compose failing steps without early returns: once a
// result has failed, later steps are skipped and the failure flows through
// unchanged.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out] (and_then)
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - FailOnError/Tee: checks and side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
package solo
