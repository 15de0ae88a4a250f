// Package base32 implements streaming base32 encoding and
// decoding as specified by RFC 4648, compatible with the Unix
// base32 utility.
//
// Encode produces the same symbols as encoding/base32's
// StdEncoding. Decode skips whitespace and follows the same
// rules as package base64: incomplete final groups are dropped,
// and with ignoreGarbage set decoding stops after the first
// padded group.
//
// A padded group holds 1, 2, 3, or 4 bytes, followed by 6, 4, 3,
// or 1 padding symbols respectively. Any other padding is
// invalid.
package base32
