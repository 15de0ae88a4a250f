// Package base64 implements streaming base64 encoding and
// decoding as specified by RFC 4648, compatible with the Unix
// base64 utility.
//
// Comparison to encoding/base64
//
// Encode produces the same symbols as encoding/base64's
// StdEncoding, optionally broken into lines of a fixed width.
// Each line is terminated by '\n', including the last.
//
// Decode accepts what the utility accepts, which differs from
// encoding/base64 in a few ways:
//
//    - ASCII whitespace (' ', '\t', '\n', '\v', '\f', '\r') is
//      skipped anywhere in the input.
//    - A trailing incomplete group is silently dropped.
//    - With ignoreGarbage set, bytes outside of the alphabet are
//      skipped and decoding stops after the first padded group;
//      anything after it is never read.
//    - Padding that is followed by more data is rejected, even
//      when ignoreGarbage is set.
//
// Non-zero bits beneath the padding are ignored.
package base64
