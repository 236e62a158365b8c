// Package message defines the closed set of typed UMP messages.
//
// Every message category is a comparable value type with unexported fields.
// Constructors validate protocol field widths, so a message that exists is
// encodable; accessors expose sub-kind fields at their protocol width.
package message
