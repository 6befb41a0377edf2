// Package stream owns per-stream head production.
//
// Ownership boundary:
// - immutable per-protocol stream configuration
// - protocol default policy
// - the monotonic frame counter
package stream
