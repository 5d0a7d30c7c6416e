package export

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/zphilip/handDetect/rosmsg"
)

type msgpackCodec struct{}

// MsgPack returns a MessagePack codec with sorted map keys.
// Content-Type: application/msgpack
func MsgPack() Codec { return msgpackCodec{} }

func (msgpackCodec) ContentType() string { return "application/msgpack" }
func (msgpackCodec) Marshal(m *rosmsg.Message) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(rosmsg.ToMap(m)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
