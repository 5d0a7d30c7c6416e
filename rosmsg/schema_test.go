package rosmsg

import (
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownMD5Sums(t *testing.T) {
	r := fixtureRegistry(t)
	tests := []struct {
		name string
		md5  string
	}{
		{"std_msgs/Header", "2176decaecbce78abc3b96ef049fabed"},
		{"geometry_msgs/Point", "4a842b65f413084dc2b10fb484ea7f17"},
		{"geometry_msgs/Vector3", "4a842b65f413084dc2b10fb484ea7f17"},
		{"geometry_msgs/Point32", "cc153912f1453b708d221682bc23d9ac"},
		{"geometry_msgs/Quaternion", "a779879fadf0160734f906b8c19c7004"},
		{"geometry_msgs/Pose", "e45d45a5a1ce597b249e23fb30fc871f"},
		{"geometry_msgs/Pose2D", "938fa65709584ad8e77d238529be13b8"},
		{"geometry_msgs/PoseStamped", "d3812c3cbc69362b77dc0b19b345f8f5"},
		{"geometry_msgs/QuaternionStamped", "e57f1e547e0e1fd13504588ffc8334e2"},
		{"geometry_msgs/Transform", "ac9eff44abf714214112b05d54a3cf9b"},
		{"sensor_msgs/PointField", "268eacb2962780ceac86cbd17e328150"},
		{"sensor_msgs/PointCloud2", "1158d486dd51d683ce2f1be655c3c181"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := r.Lookup(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.md5, s.MD5Sum())
		})
	}
}

func TestCanonicalText(t *testing.T) {
	s := lookup(t, "sensor_msgs/PointCloud2")
	want := strings.Join([]string{
		"2176decaecbce78abc3b96ef049fabed header",
		"uint32 height",
		"uint32 width",
		"268eacb2962780ceac86cbd17e328150 fields",
		"bool is_bigendian",
		"uint32 point_step",
		"uint32 row_step",
		"uint8[] data",
		"bool is_dense",
	}, "\n")
	assert.Equal(t, want, s.CanonicalText())

	field := lookup(t, "sensor_msgs/PointField")
	assert.True(t, strings.HasPrefix(field.CanonicalText(), "uint8 INT8=1\nuint8 UINT8=2\n"))
}

func TestFingerprintChanges(t *testing.T) {
	point := MustSchema("geometry_msgs/Point", []Field{
		{Name: "x", Type: Prim(KindFloat64)},
		{Name: "y", Type: Prim(KindFloat64)},
		{Name: "z", Type: Prim(KindFloat64)},
	})
	assert.Equal(t, "4a842b65f413084dc2b10fb484ea7f17", point.MD5Sum())

	again := MustSchema("geometry_msgs/Point", point.Fields())
	assert.Equal(t, point.Fingerprint(), again.Fingerprint())
	assert.True(t, point.Matches(again))

	renamed := MustSchema("geometry_msgs/Point", []Field{
		{Name: "x", Type: Prim(KindFloat64)},
		{Name: "y", Type: Prim(KindFloat64)},
		{Name: "w", Type: Prim(KindFloat64)},
	})
	assert.NotEqual(t, point.MD5Sum(), renamed.MD5Sum())

	narrowed := MustSchema("geometry_msgs/Point", []Field{
		{Name: "x", Type: Prim(KindFloat64)},
		{Name: "y", Type: Prim(KindFloat64)},
		{Name: "z", Type: Prim(KindFloat32)},
	})
	assert.NotEqual(t, point.MD5Sum(), narrowed.MD5Sum())

	reordered := MustSchema("geometry_msgs/Point", []Field{
		{Name: "y", Type: Prim(KindFloat64)},
		{Name: "x", Type: Prim(KindFloat64)},
		{Name: "z", Type: Prim(KindFloat64)},
	})
	assert.NotEqual(t, point.MD5Sum(), reordered.MD5Sum())
	assert.False(t, point.Matches(reordered))

	wrap := func(p *Schema) *Schema {
		return MustSchema("test_msgs/Wrap", []Field{{Name: "p", Type: SliceOf(Nested(p))}})
	}
	assert.NotEqual(t, wrap(point).MD5Sum(), wrap(renamed).MD5Sum(), "nested changes propagate")
}

func TestSchemaFacts(t *testing.T) {
	stamped := lookup(t, "geometry_msgs/PoseStamped")
	assert.True(t, stamped.HasHeader())
	assert.False(t, stamped.IsFixedSize())
	assert.Equal(t, "geometry_msgs", stamped.Package())
	assert.Equal(t, "PoseStamped", stamped.ShortName())

	var deps []string
	for _, d := range stamped.Dependencies() {
		deps = append(deps, d.Name())
	}
	assert.Equal(t, []string{"std_msgs/Header", "geometry_msgs/Pose", "geometry_msgs/Point", "geometry_msgs/Quaternion"}, deps)

	def := stamped.Definition()
	assert.True(t, strings.HasPrefix(def, "Header header\nPose pose\n"))
	assert.Contains(t, def, "\n"+definitionSeparator+"\nMSG: std_msgs/Header\n")
	assert.Less(t, strings.Index(def, "MSG: geometry_msgs/Pose\n"), strings.Index(def, "MSG: geometry_msgs/Point\n"))

	pose := lookup(t, "geometry_msgs/Pose")
	size, ok := pose.FixedSize()
	assert.True(t, ok)
	assert.Equal(t, 56, size)
	assert.False(t, pose.HasHeader())

	field := lookup(t, "sensor_msgs/PointField")
	c, ok := field.Constant("FLOAT64")
	require.True(t, ok)
	assert.Equal(t, uint8(8), c.Value)
	assert.Equal(t, "8", c.Text)
}

func TestNewSchemaErrors(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		fields []Field
		consts []Constant
	}{
		{"bad type name", "Point", []Field{{Name: "x", Type: Prim(KindFloat64)}}, nil},
		{"bad field name", "a/B", []Field{{Name: "1x", Type: Prim(KindFloat64)}}, nil},
		{"duplicate field", "a/B", []Field{{Name: "x", Type: Prim(KindInt8)}, {Name: "x", Type: Prim(KindInt8)}}, nil},
		{"missing nested schema", "a/B", []Field{{Name: "p", Type: Type{Kind: KindMessage}}}, nil},
		{"invalid kind", "a/B", []Field{{Name: "p", Type: Type{}}}, nil},
		{"mismatched spelling", "a/B", []Field{{Name: "p", Type: Type{Kind: KindInt32, Name: "uint32"}}}, nil},
		{"time constant", "a/B", nil, []Constant{{Name: "T", Type: Prim(KindTime), Text: "0"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSchema(tt.schema, tt.fields, tt.consts...)
			assert.ErrorIs(t, err, ErrInvalidDefinition)
		})
	}
}

func TestParseDefinition(t *testing.T) {
	def, err := ParseDefinition("test_msgs/Consts", `# header comment
string GREETING = hello # not a comment
int32 ANSWER=42 # a comment
byte   SMALL = -3
bool ON=True
float64 PI = 3.14159

byte[] raw
char[4] code
geometry_msgs/Point[] pts   # trailing
`)
	require.NoError(t, err)

	require.Len(t, def.Constants, 5)
	assert.Equal(t, "hello # not a comment", def.Constants[0].Value)
	assert.Equal(t, int32(42), def.Constants[1].Value)
	assert.Equal(t, "42", def.Constants[1].Text)
	assert.Equal(t, int8(-3), def.Constants[2].Value)
	assert.Equal(t, "byte", def.Constants[2].Type.Name)
	assert.Equal(t, true, def.Constants[3].Value)
	assert.Equal(t, 3.14159, def.Constants[4].Value)

	assert.Equal(t, []FieldSpec{
		{Name: "raw", Type: "byte", Array: VarArray},
		{Name: "code", Type: "char", Array: FixedArray, Len: 4},
		{Name: "pts", Type: "geometry_msgs/Point", Array: VarArray},
	}, def.Fields)
}

func TestParseDefinitionErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"missing name", "int32\n"},
		{"extra token", "int32 a b\n"},
		{"bounded sequence", "int32[<=5] a\n"},
		{"bad array length", "int32[x] a\n"},
		{"unterminated array", "int32[3 a\n"},
		{"bad field name", "int32 _a\n"},
		{"constant out of range", "uint8 X=256\n"},
		{"negative unsigned constant", "uint32 X=-1\n"},
		{"message constant", "geometry_msgs/Point P=1\n"},
		{"time constant", "time T=1\n"},
		{"bad bool constant", "bool B=yes\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDefinition("test_msgs/Bad", tt.text)
			assert.ErrorIs(t, err, ErrInvalidDefinition)
		})
	}
}

func TestRegistryResolution(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add("test_msgs/A", "B b\n"))
	require.NoError(t, r.Add("test_msgs/B", "A a\n"))
	require.NoError(t, r.Add("test_msgs/C", "Missing m\n"))

	_, err := r.Lookup("test_msgs/A")
	assert.ErrorIs(t, err, ErrInvalidDefinition)
	assert.Contains(t, err.Error(), "test_msgs/A -> test_msgs/B -> test_msgs/A")

	_, err = r.Lookup("test_msgs/C")
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), "test_msgs/Missing")

	_, err = r.Lookup("test_msgs/Nope")
	assert.ErrorIs(t, err, ErrUnknownType)

	require.NoError(t, r.Add("test_msgs/A", "B b\n"), "same text twice is a no-op")
	assert.ErrorIs(t, r.Add("test_msgs/A", "int32 b\n"), ErrInvalidDefinition)

	assert.Equal(t, []string{"test_msgs/A", "test_msgs/B", "test_msgs/C"}, r.Names())
}

func TestRegistryAddFS(t *testing.T) {
	fsys := fstest.MapFS{
		"defs/std_msgs/msg/Header.msg":        {Data: []byte(fixtureDefinitions["std_msgs/Header"])},
		"defs/geometry_msgs/msg/Point.msg":    {Data: []byte(fixtureDefinitions["geometry_msgs/Point"])},
		"defs/geometry_msgs/msg/Stamped.msg":  {Data: []byte("Header header\nPoint point\n")},
		"defs/geometry_msgs/README.md":        {Data: []byte("ignored")},
		"defs/geometry_msgs/srv/Ignored.msg":  {Data: []byte("not a message")},
		"defs/geometry_msgs/msg/nested/X.txt": {Data: []byte("ignored")},
	}
	r := NewRegistry()
	require.NoError(t, r.AddFS(fsys, "defs"))
	assert.Equal(t, []string{"geometry_msgs/Point", "geometry_msgs/Stamped", "std_msgs/Header"}, r.Names())

	s, err := r.Lookup("geometry_msgs/Stamped")
	require.NoError(t, err)
	assert.True(t, s.HasHeader())
}

func TestRegistryConcurrentLookup(t *testing.T) {
	r := fixtureRegistry(t)
	var wg sync.WaitGroup
	results := make([]*Schema, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.MustLookup("sensor_msgs/PointCloud2")
		}(i)
	}
	wg.Wait()
	for _, s := range results {
		assert.Same(t, results[0], s)
	}
}
