package rosmsg

import (
	"encoding/binary"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Well-known connection header keys.
const (
	HeaderKeyType       = "type"
	HeaderKeyMD5Sum     = "md5sum"
	HeaderKeyDefinition = "message_definition"
	HeaderKeyCallerID   = "callerid"
	HeaderKeyTopic      = "topic"
	HeaderKeyLatching   = "latching"
)

// Wildcard is accepted in place of a type or md5sum by CheckCompatible.
const Wildcard = "*"

// ConnectionHeader is the key/value block two endpoints exchange before any
// message. It travels beside decoded messages, never inside them.
type ConnectionHeader map[string]string

// NewConnectionHeader returns the header announcing schema s.
func NewConnectionHeader(s *Schema) ConnectionHeader {
	return ConnectionHeader{
		HeaderKeyType:       s.Name(),
		HeaderKeyMD5Sum:     s.MD5Sum(),
		HeaderKeyDefinition: s.Definition(),
	}
}

// Encode renders the header block: a uint32 total length, then one
// uint32-prefixed "key=value" entry per key in sorted key order.
func (h ConnectionHeader) Encode() []byte {
	keys := make([]string, 0, len(h))
	size := 0
	for k, v := range h {
		keys = append(keys, k)
		size += 4 + len(k) + 1 + len(v)
	}
	sort.Strings(keys)

	buf := make([]byte, 4, 4+size)
	binary.LittleEndian.PutUint32(buf, uint32(size))
	for _, k := range keys {
		entry := k + "=" + h[k]
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(entry)))
		buf = append(buf, entry...)
	}
	return buf
}

// EncodeConnectionHeader is shorthand for h.Encode().
func EncodeConnectionHeader(h ConnectionHeader) []byte {
	return h.Encode()
}

// DecodeConnectionHeader parses a header block produced by Encode or by any
// ROS endpoint. The block must fill buf exactly.
func DecodeConnectionHeader(buf []byte) (ConnectionHeader, error) {
	if len(buf) < 4 {
		return nil, errorf(ErrorCodeBufferTruncated, "connection header: need 4 bytes, have %d", len(buf))
	}
	total := binary.LittleEndian.Uint32(buf)
	body := buf[4:]
	if uint64(total) > uint64(len(body)) {
		return nil, errorf(ErrorCodeLengthOverflow, "connection header: length %d exceeds %d remaining bytes", total, len(body))
	}
	if int(total) < len(body) {
		return nil, errorf(ErrorCodeTrailingBytes, "connection header: %d trailing bytes", len(body)-int(total))
	}

	h := make(ConnectionHeader)
	for off := 0; off < len(body); {
		if len(body)-off < 4 {
			return nil, errorf(ErrorCodeBufferTruncated, "connection header: entry length cut at offset %d", off+4)
		}
		n := binary.LittleEndian.Uint32(body[off:])
		off += 4
		if uint64(n) > uint64(len(body)-off) {
			return nil, errorf(ErrorCodeLengthOverflow, "connection header: entry length %d exceeds %d remaining bytes", n, len(body)-off)
		}
		entry := string(body[off : off+int(n)])
		off += int(n)
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, errorf(ErrorCodeInvalidDefinition, "connection header: entry %q has no '='", entry)
		}
		h[k] = v
	}
	return h, nil
}

// CheckCompatible fails with SchemaMismatch unless the peer header announces
// the same type name and fingerprint as s. "*" matches anything.
func CheckCompatible(s *Schema, peer ConnectionHeader) error {
	typ, ok := peer[HeaderKeyType]
	if !ok {
		return errorf(ErrorCodeSchemaMismatch, "%s: peer header has no type", s.name)
	}
	if typ != Wildcard && typ != s.name {
		return errorf(ErrorCodeSchemaMismatch, "%s: peer announced type %s", s.name, typ)
	}
	sum, ok := peer[HeaderKeyMD5Sum]
	if !ok {
		return errorf(ErrorCodeSchemaMismatch, "%s: peer header has no md5sum", s.name)
	}
	if sum != Wildcard && sum != s.MD5Sum() {
		return errorf(ErrorCodeSchemaMismatch, "%s: peer md5sum %s, local %s", s.name, sum, s.MD5Sum())
	}
	return nil
}

// Receive checks the peer header against s and then decodes payload. The
// header is returned next to the message so callers can read callerid,
// topic and similar metadata. No decoding is attempted on a mismatch.
func Receive(s *Schema, peer ConnectionHeader, payload []byte) (*Message, ConnectionHeader, error) {
	if err := CheckCompatible(s, peer); err != nil {
		log().Warn("rejecting incompatible peer",
			zap.String("type", s.name),
			zap.String("peer_type", peer[HeaderKeyType]),
			zap.String("peer_md5sum", peer[HeaderKeyMD5Sum]),
			zap.String("callerid", peer[HeaderKeyCallerID]))
		return nil, nil, err
	}
	m, err := Decode(s, payload)
	if err != nil {
		return nil, nil, err
	}
	return m, peer, nil
}
