// Package protocol owns the VBAN wire contract.
//
// Ownership boundary:
// - the 28-byte packet head layout and its bit-masks
// - closed registries for protocol, data-rate, format and codec values
// - head encode/decode validation gates
package protocol
