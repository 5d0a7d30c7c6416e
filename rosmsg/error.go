package rosmsg

import (
	"fmt"
)

// ErrorCode classifies codec and schema failures
type ErrorCode int32

const (
	// ErrorCodeBufferTooSmall indicates the encode destination cannot hold the message
	ErrorCodeBufferTooSmall ErrorCode = -1

	// ErrorCodeBufferTruncated indicates the decode source ended inside a fixed-width read
	ErrorCodeBufferTruncated ErrorCode = -2

	// ErrorCodeLengthOverflow indicates a length prefix claims more bytes than remain
	ErrorCodeLengthOverflow ErrorCode = -3

	// ErrorCodeSchemaMismatch indicates the peer announced a different type or fingerprint
	ErrorCodeSchemaMismatch ErrorCode = -4

	// ErrorCodeTrailingBytes indicates bytes were left over after the last field
	ErrorCodeTrailingBytes ErrorCode = -5

	// ErrorCodeInvalidDefinition indicates a malformed message definition or header block
	ErrorCodeInvalidDefinition ErrorCode = -6

	// ErrorCodeUnknownType indicates a referenced message type is not registered
	ErrorCodeUnknownType ErrorCode = -7

	// ErrorCodeTypeMismatch indicates a Go value does not fit the field it was assigned to
	ErrorCodeTypeMismatch ErrorCode = -8
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCodeBufferTooSmall:    "BufferTooSmall",
	ErrorCodeBufferTruncated:   "BufferTruncated",
	ErrorCodeLengthOverflow:    "LengthOverflow",
	ErrorCodeSchemaMismatch:    "SchemaMismatch",
	ErrorCodeTrailingBytes:     "TrailingBytes",
	ErrorCodeInvalidDefinition: "InvalidDefinition",
	ErrorCodeUnknownType:       "UnknownType",
	ErrorCodeTypeMismatch:      "TypeMismatch",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int32(c))
}

// CodecError is the typed failure returned by every codec and registry operation
type CodecError struct {
	code ErrorCode
	msg  string
}

// Error implements the error interface
func (e CodecError) Error() string {
	return fmt.Sprintf("%s (code: %d)", e.msg, e.code)
}

// Code returns the error code
func (e CodecError) Code() ErrorCode {
	return e.code
}

// Message returns the error message without the code
func (e CodecError) Message() string {
	return e.msg
}

// NewCodecError creates a new CodecError with the given code and message
func NewCodecError(code ErrorCode, msg string) CodecError {
	return CodecError{code: code, msg: msg}
}

func errorf(code ErrorCode, format string, args ...any) CodecError {
	return CodecError{code: code, msg: fmt.Sprintf(format, args...)}
}

func codecErr(code ErrorCode, format string, args ...any) *CodecError {
	e := errorf(code, format, args...)
	return &e
}

// Is reports whether target matches this error by comparing error codes.
// This enables errors.Is() support for CodecError.
func (e CodecError) Is(target error) bool {
	t, ok := target.(CodecError)
	if ok {
		return e.code == t.code
	}
	return false
}

// Sentinel errors, one per code. Use errors.Is(err, rosmsg.ErrLengthOverflow).
var (
	ErrBufferTooSmall    = NewCodecError(ErrorCodeBufferTooSmall, "buffer too small")
	ErrBufferTruncated   = NewCodecError(ErrorCodeBufferTruncated, "buffer truncated")
	ErrLengthOverflow    = NewCodecError(ErrorCodeLengthOverflow, "length prefix overflows buffer")
	ErrSchemaMismatch    = NewCodecError(ErrorCodeSchemaMismatch, "schema mismatch")
	ErrTrailingBytes     = NewCodecError(ErrorCodeTrailingBytes, "trailing bytes after message")
	ErrInvalidDefinition = NewCodecError(ErrorCodeInvalidDefinition, "invalid message definition")
	ErrUnknownType       = NewCodecError(ErrorCodeUnknownType, "unknown message type")
	ErrTypeMismatch      = NewCodecError(ErrorCodeTypeMismatch, "type mismatch")
)
