package export

import (
	"encoding/json"

	"github.com/zphilip/handDetect/rosmsg"
)

type jsonCodec struct{}

// JSON returns a JSON codec (RFC 8259). Content-Type: application/json
// uint8 arrays are base64 strings; NaN and infinities fail to encode.
func JSON() Codec { return jsonCodec{} }

func (jsonCodec) ContentType() string { return "application/json" }
func (jsonCodec) Marshal(m *rosmsg.Message) ([]byte, error) {
	return json.Marshal(rosmsg.ToMap(m))
}
