// Package codec transforms word buffers into typed messages and back.
//
// Ownership boundary:
// - bit-exact field extraction and packing per category
// - conformance-mode reserved-bit policing on decode
// - the decode error taxonomy
package codec
