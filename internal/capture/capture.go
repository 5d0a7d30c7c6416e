// Package capture reads and writes recorded ROS message streams: an optional
// connection header block followed by frames, each a uint32 little-endian
// length and that many bytes of serialized message.
package capture

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/zphilip/handDetect/rosmsg"
)

// DefaultMaxFrame bounds a single frame or header block.
const DefaultMaxFrame = 64 << 20

// Reader decodes frames of one schema from a stream.
type Reader struct {
	r      *bufio.Reader
	schema *rosmsg.Schema
	max    int
	log    *zap.Logger
	frames int
	peer   rosmsg.ConnectionHeader
}

// Option configures a Reader.
type Option func(*Reader)

// WithMaxFrame sets the largest accepted frame length.
func WithMaxFrame(n int) Option {
	return func(r *Reader) {
		if n > 0 {
			r.max = n
		}
	}
}

// WithLogger sets the logger used for per-stream events.
func WithLogger(l *zap.Logger) Option {
	return func(r *Reader) {
		if l != nil {
			r.log = l
		}
	}
}

// NewReader returns a Reader decoding frames of schema s from src.
func NewReader(src io.Reader, s *rosmsg.Schema, opts ...Option) *Reader {
	r := &Reader{
		r:      bufio.NewReader(src),
		schema: s,
		max:    DefaultMaxFrame,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Schema returns the schema frames are decoded with.
func (r *Reader) Schema() *rosmsg.Schema { return r.schema }

// Frames returns the number of frames read so far.
func (r *Reader) Frames() int { return r.frames }

// Peer returns the connection header consumed by ReadHeader, if any.
func (r *Reader) Peer() rosmsg.ConnectionHeader { return r.peer }

// ReadHeader consumes the leading connection header block and fails with
// SchemaMismatch unless it announces the reader's type and fingerprint.
func (r *Reader) ReadHeader() (rosmsg.ConnectionHeader, error) {
	block, err := r.readBlock("connection header")
	if err != nil {
		return nil, err
	}
	h, err := rosmsg.DecodeConnectionHeader(block)
	if err != nil {
		return nil, err
	}
	if err := rosmsg.CheckCompatible(r.schema, h); err != nil {
		return nil, err
	}
	r.peer = h
	r.log.Debug("read connection header",
		zap.String("type", h[rosmsg.HeaderKeyType]),
		zap.String("callerid", h[rosmsg.HeaderKeyCallerID]),
		zap.String("topic", h[rosmsg.HeaderKeyTopic]))
	return h, nil
}

// NextFrame returns the payload of the next frame without decoding it.
// It returns io.EOF when the stream ends on a frame boundary.
func (r *Reader) NextFrame() ([]byte, error) {
	block, err := r.readBlock(fmt.Sprintf("frame %d", r.frames))
	if err != nil {
		return nil, err
	}
	r.frames++
	return block[4:], nil
}

// Next decodes the next frame. It returns io.EOF when the stream ends on a
// frame boundary.
func (r *Reader) Next() (*rosmsg.Message, error) {
	payload, err := r.NextFrame()
	if err != nil {
		return nil, err
	}
	m, err := rosmsg.Decode(r.schema, payload)
	if err != nil {
		return nil, fmt.Errorf("frame %d: %w", r.frames-1, err)
	}
	return m, nil
}

// readBlock reads a length prefix and its body, returning both. The body
// buffer grows with the bytes that arrive rather than the announced length.
func (r *Reader) readBlock(what string) ([]byte, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(r.r, prefix[:]); err != nil {
		switch {
		case errors.Is(err, io.EOF):
			return nil, io.EOF
		case errors.Is(err, io.ErrUnexpectedEOF):
			return nil, rosmsg.NewCodecError(rosmsg.ErrorCodeBufferTruncated, what+": length prefix cut short")
		default:
			return nil, fmt.Errorf("%s: read length prefix: %w", what, err)
		}
	}
	n := binary.LittleEndian.Uint32(prefix[:])
	if uint64(n) > uint64(r.max) {
		return nil, rosmsg.NewCodecError(rosmsg.ErrorCodeLengthOverflow,
			fmt.Sprintf("%s: length %d exceeds limit %d", what, n, r.max))
	}
	var block bytes.Buffer
	block.Write(prefix[:])
	got, err := io.CopyN(&block, r.r, int64(n))
	switch {
	case errors.Is(err, io.EOF):
		return nil, rosmsg.NewCodecError(rosmsg.ErrorCodeBufferTruncated,
			fmt.Sprintf("%s: want %d bytes, got %d", what, n, got))
	case err != nil:
		return nil, fmt.Errorf("%s: read %d bytes: %w", what, n, err)
	}
	return block.Bytes(), nil
}

// Each decodes every remaining frame and hands it to h. It stops at the end
// of the stream, at the first error, or when ctx is done, and returns the
// number of frames delivered. A Queue blocked on a consumer that stopped
// reading is released by cancelling ctx.
func Each(ctx context.Context, r *Reader, h Handler[*rosmsg.Message]) (int, error) {
	deliver, done, _ := h.Bind()
	if done != nil {
		defer done()
	}
	count := 0
	for {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		m, err := r.Next()
		if errors.Is(err, io.EOF) {
			r.log.Debug("capture finished", zap.String("type", r.schema.Name()), zap.Int("frames", count))
			return count, nil
		}
		if err != nil {
			return count, err
		}
		if err := deliver(ctx, m); err != nil {
			return count, err
		}
		count++
	}
}

// EachTyped is like Each but decodes frames into a generated struct type.
// The reader's schema must carry the struct's fingerprint.
func EachTyped[T any, PT interface {
	*T
	rosmsg.Typed
}](ctx context.Context, r *Reader, h Handler[PT]) (int, error) {
	if want := PT(new(T)).Schema(); !want.Matches(r.schema) {
		return 0, rosmsg.NewCodecError(rosmsg.ErrorCodeSchemaMismatch,
			fmt.Sprintf("reader decodes %s, handler wants %s", r.schema.Name(), want.Name()))
	}
	deliver, done, _ := h.Bind()
	if done != nil {
		defer done()
	}
	count := 0
	for {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		payload, err := r.NextFrame()
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			return count, err
		}
		v := PT(new(T))
		if err := v.UnmarshalROS(payload); err != nil {
			return count, fmt.Errorf("frame %d: %w", r.frames-1, err)
		}
		if err := deliver(ctx, v); err != nil {
			return count, err
		}
		count++
	}
}

// Writer writes a capture stream.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer appending to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader writes a connection header block. It belongs first in the stream.
func (w *Writer) WriteHeader(h rosmsg.ConnectionHeader) error {
	_, err := w.w.Write(h.Encode())
	return err
}

// WriteFrame writes one length-prefixed payload.
func (w *Writer) WriteFrame(payload []byte) error {
	var prefix [4]byte
	binary.LittleEndian.PutUint32(prefix[:], uint32(len(payload)))
	if _, err := w.w.Write(prefix[:]); err != nil {
		return err
	}
	_, err := w.w.Write(payload)
	return err
}

// WriteMessage serializes m and writes it as one frame.
func (w *Writer) WriteMessage(m *rosmsg.Message) error {
	b, err := rosmsg.Marshal(m)
	if err != nil {
		return err
	}
	return w.WriteFrame(b)
}

// WriteTyped serializes a generated struct and writes it as one frame.
func (w *Writer) WriteTyped(v rosmsg.Typed) error {
	b, err := v.MarshalROS()
	if err != nil {
		return err
	}
	return w.WriteFrame(b)
}
