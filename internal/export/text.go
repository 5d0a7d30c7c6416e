package export

import "github.com/zphilip/handDetect/rosmsg"

type textCodec struct{}

// Text returns the indented field listing produced by rosmsg.Describe.
// Content-Type: text/plain
func Text() Codec { return textCodec{} }

func (textCodec) ContentType() string { return "text/plain" }
func (textCodec) Marshal(m *rosmsg.Message) ([]byte, error) {
	return []byte(rosmsg.Describe(m)), nil
}
