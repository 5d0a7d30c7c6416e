package export

import (
	cbor "github.com/fxamacker/cbor/v2"

	"github.com/zphilip/handDetect/rosmsg"
)

type cborCodec struct{ enc cbor.EncMode }

// CBOR returns a deterministic CBOR codec (RFC 8949, canonical key order).
// Content-Type: application/cbor
func CBOR() (Codec, error) {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return cborCodec{enc: em}, nil
}

func (c cborCodec) ContentType() string { return "application/cbor" }
func (c cborCodec) Marshal(m *rosmsg.Message) ([]byte, error) {
	return c.enc.Marshal(rosmsg.ToMap(m))
}
