// Package convert raises legacy 7-bit channel voice messages to their
// MIDI 2.0 equivalents.
//
// Conversion is stateful per channel within one stream: bank select
// controllers are buffered until the program change that consumes them.
// Each independent stream owns its own State.
package convert
