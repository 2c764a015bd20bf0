// Package hybrid provides the core value types for switched-system
// trajectory seeding:
//
//   - [State]: fixed-dimension state vector
//   - [Input]: fixed-dimension control input vector
//   - [Trajectory]: aligned time/state/input sample sequences
//
// Vector dimensions are fixed at construction time and carried by the
// values themselves; there is no global dimension configuration.
//
// # Thread Safety
//
// The types in this package are plain values with no internal
// synchronization. A Trajectory must not be appended to from multiple
// goroutines at once; give each concurrent execution context its own.
package hybrid
