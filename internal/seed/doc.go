// Package seed defines the operating-trajectory provider contract and
// its concrete variants. A provider produces the nominal state/input
// trajectory an iterative optimizer (e.g. SLQ) starts from; the seed's
// quality affects convergence but not correctness.
//
// Variants:
//
//   - [OperatingPoint]: one fixed state/input pair emitted as a
//     two-sample bookend trajectory. The default.
//   - [ModeOperatingPoints]: per-mode operating points; queries the
//     bound mode lookup and fails fast when unbound.
//   - [LinearInterpolation]: ramps from the caller's initial state to
//     a target operating point.
//
// Providers hold no trajectory state between calls. Output ownership
// stays with the caller-supplied [hybrid.Trajectory].
package seed
