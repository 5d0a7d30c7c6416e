// Package rosmsg implements the ROS1 message wire format: schemas built from
// .msg definitions, dynamic message values, and the binary codec between them.
//
// The encoding is little-endian with no padding. Strings and variable-length
// sequences carry a uint32 length prefix, fixed arrays carry none, and nested
// messages are written inline. Every schema carries the ROS MD5 fingerprint
// of its canonical text, so two endpoints agree on a layout by comparing
// type name and MD5Sum.
//
// Decoding validates every length prefix against the remaining input before
// allocating, so hostile buffers fail with LengthOverflow or BufferTruncated
// instead of exhausting memory. All failures are CodecError values and match
// the Err* sentinels through errors.Is.
//
// Schemas are immutable and safe to share between goroutines. A Message is
// not: encode it from one goroutine at a time.
//
// Package-level diagnostics go through zap. Set ROSMSG_LOG to DEBUG, INFO,
// WARN or ERROR, or install a logger with SetLogger.
package rosmsg
