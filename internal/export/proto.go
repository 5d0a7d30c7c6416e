package export

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/zphilip/handDetect/rosmsg"
)

type protoCodec struct {
	mo proto.MarshalOptions
}

// Proto returns a codec emitting a google.protobuf.Struct with deterministic
// marshaling. Numbers become doubles and uint8 arrays base64 strings, as
// structpb defines. Content-Type: application/x-protobuf
func Proto() Codec {
	return protoCodec{mo: proto.MarshalOptions{Deterministic: true}}
}

func (p protoCodec) ContentType() string { return "application/x-protobuf" }

func (p protoCodec) Marshal(m *rosmsg.Message) ([]byte, error) {
	s, err := ToStruct(m)
	if err != nil {
		return nil, err
	}
	return p.mo.Marshal(s)
}

// ToStruct converts m into a protobuf Struct.
func ToStruct(m *rosmsg.Message) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(rosmsg.ToMap(m))
	if err != nil {
		return nil, fmt.Errorf("protobuf: %s: %w", m.Schema().Name(), err)
	}
	return s, nil
}
