package rosmsg

import (
	"crypto/md5"
	"strings"
)

// canonicalText renders the text the fingerprint covers. Constants come
// first as "type NAME=value", then fields as "type name". Builtin types keep
// their spelling and array suffix; message-typed fields, arrays included, are
// replaced by the nested type's MD5 so a change anywhere below propagates up.
func canonicalText(s *Schema) string {
	lines := make([]string, 0, len(s.constants)+len(s.fields))
	for _, c := range s.constants {
		lines = append(lines, c.Type.Name+" "+c.Name+"="+c.Text)
	}
	for _, f := range s.fields {
		if f.Type.Kind == KindMessage {
			lines = append(lines, f.Type.Msg.MD5Sum()+" "+f.Name)
			continue
		}
		lines = append(lines, f.Type.String()+" "+f.Name)
	}
	return strings.Join(lines, "\n")
}

func fingerprint(canonical string) [16]byte {
	return md5.Sum([]byte(canonical))
}
