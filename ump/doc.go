// Package ump owns the Universal MIDI Packet wire contract primitives.
//
// Ownership boundary:
// - 32-bit word buffers and first-word field extraction
// - the message-type table mapping type nibbles to packet word counts
package ump
