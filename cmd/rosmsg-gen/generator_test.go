package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zphilip/handDetect/internal/config"
	"github.com/zphilip/handDetect/msgs"
	"github.com/zphilip/handDetect/rosmsg"
)

var testOpts = Options{Prefix: config.DefaultPrefix, Registry: config.DefaultPrefix}

func TestSanitizePackageName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"std_msgs", "std_msgs"},
		{"body-msgs", "body_msgs"},
		{"my-package", "my_package"},
	}

	for _, test := range tests {
		result := sanitizePackageName(test.input)
		if result != test.expected {
			t.Errorf("sanitizePackageName(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestGenerateGoMessage(t *testing.T) {
	code, err := GenerateGoMessage(msgs.MustLookup("geometry_msgs/Pose2D"), testOpts)
	require.NoError(t, err)

	codeStr := string(code)

	expectedElements := []string{
		"// Code generated by rosmsg-gen. DO NOT EDIT.",
		"package geometry_msgs",
		`"github.com/zphilip/handDetect/msgs"`,
		`"github.com/zphilip/handDetect/rosmsg"`,
		`Pose2D_Type   = "geometry_msgs/Pose2D"`,
		`Pose2D_MD5Sum = "938fa65709584ad8e77d238529be13b8"`,
		"type Pose2D struct",
		"Theta float64 `rosmsg:\"theta\"`",
		"var _ rosmsg.Typed = (*Pose2D)(nil)",
		"func (m *Pose2D) Schema() *rosmsg.Schema",
		"return msgs.MustLookup(Pose2D_Type)",
		"func (m *Pose2D) MarshalROS() ([]byte, error)",
		"func (m *Pose2D) UnmarshalROS(data []byte) error",
	}

	for _, element := range expectedElements {
		if !strings.Contains(codeStr, element) {
			t.Errorf("Generated code missing expected element: %q", element)
		}
	}
	assert.NotContains(t, codeStr, "Message-specific constants")
}

func TestGenerateCrossPackageImports(t *testing.T) {
	code, err := GenerateGoMessage(msgs.MustLookup("body_msgs/Hand"), testOpts)
	require.NoError(t, err)
	codeStr := string(code)

	assert.Contains(t, codeStr, `"github.com/zphilip/handDetect/msgs/geometry_msgs"`)
	assert.Contains(t, codeStr, `"github.com/zphilip/handDetect/msgs/sensor_msgs"`)
	assert.NotContains(t, codeStr, `"github.com/zphilip/handDetect/msgs/body_msgs"`)
	assert.Contains(t, codeStr, "[]geometry_msgs.Point")
	assert.Contains(t, codeStr, "rosmsg.Time")

	code, err = GenerateGoMessage(msgs.MustLookup("body_msgs/Hands"), testOpts)
	require.NoError(t, err)
	assert.Contains(t, string(code), "[]Hand ")
	assert.Contains(t, string(code), "std_msgs.Header")
}

func TestGenerateConstants(t *testing.T) {
	code, err := GenerateGoMessage(msgs.MustLookup("sensor_msgs/PointField"), testOpts)
	require.NoError(t, err)
	codeStr := string(code)

	assert.Contains(t, codeStr, "// Message-specific constants")
	assert.Contains(t, codeStr, "PointField_INT8    uint8 = 1")
	assert.Contains(t, codeStr, "PointField_FLOAT64 uint8 = 8")
}

func TestGenerateCustomRegistry(t *testing.T) {
	r := rosmsg.NewRegistry()
	require.NoError(t, r.Add("robot_msgs/Status", "string NAME=\"arm\"\nbool ON=True\nbyte level\nchar grade\nstring frame_id\n"))

	code, err := GenerateGoMessage(r.MustLookup("robot_msgs/Status"), Options{
		Prefix:   "example.com/robot/gen",
		Registry: "example.com/robot/schemas",
	})
	require.NoError(t, err)
	codeStr := string(code)

	assert.Contains(t, codeStr, `"example.com/robot/schemas"`)
	assert.Contains(t, codeStr, "return schemas.MustLookup(Status_Type)")
	assert.Contains(t, codeStr, `Status_NAME string = "arm"`)
	assert.Contains(t, codeStr, "Status_ON   bool   = true")
	assert.Contains(t, codeStr, "Level   int8")
	assert.Contains(t, codeStr, "Grade   uint8")
	assert.Contains(t, codeStr, "FrameID string")
}

func TestGoType(t *testing.T) {
	r := rosmsg.NewRegistry()
	require.NoError(t, r.AddFS(msgs.FS(), "."))
	require.NoError(t, r.Add("test_msgs/Types", strings.Join([]string{
		"string s",
		"int32 i",
		"float64 f",
		"bool b",
		"Header header",
		"string[] names",
		"int32[10] fixed",
		"time t",
		"duration[] ds",
		"geometry_msgs/Point[] pts",
		"Types2 local",
	}, "\n")))
	require.NoError(t, r.Add("test_msgs/Types2", "uint8 x\n"))
	s := r.MustLookup("test_msgs/Types")

	expected := []string{
		"string",
		"int32",
		"float64",
		"bool",
		"std_msgs.Header",
		"[]string",
		"[10]int32",
		"rosmsg.Time",
		"[]rosmsg.Duration",
		"[]geometry_msgs.Point",
		"Types2",
	}

	fields := s.Fields()
	require.Len(t, fields, len(expected))
	for i, f := range fields {
		result := goType(f.Type, "test_msgs")
		if result != expected[i] {
			t.Errorf("goType(%s) = %q, expected %q", f.Name, result, expected[i])
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"data", "Data"},
		{"count", "Count"},
		{"", ""},
		{"a", "A"},
		{"ABC", "ABC"},
	}

	for _, test := range tests {
		result := capitalize(test.input)
		if result != test.expected {
			t.Errorf("capitalize(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestGoFieldName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"x", "X"},
		{"frame_id", "FrameID"},
		{"is_bigendian", "IsBigendian"},
		{"point_step", "PointStep"},
		{"right_hand", "RightHand"},
		{"playerid", "Playerid"},
		{"rgb_value", "RGBValue"},
		{"schema", "Schema_"},
		{"_private", "Private"},
	}

	for _, test := range tests {
		result := goFieldName(test.input)
		if result != test.expected {
			t.Errorf("goFieldName(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

// TestBundledUpToDate regenerates every bundled type and compares it with the
// checked-in file, ignoring whitespace.
func TestBundledUpToDate(t *testing.T) {
	r, err := msgs.Registry()
	require.NoError(t, err)

	normalize := func(s string) string { return strings.Join(strings.Fields(s), " ") }
	for _, name := range r.Names() {
		s := r.MustLookup(name)
		code, err := GenerateGoMessage(s, testOpts)
		require.NoError(t, err, name)

		file := filepath.Join("..", "..", "msgs", s.Package(), strings.ToLower(s.ShortName())+".go")
		want, err := os.ReadFile(file)
		require.NoError(t, err, name)
		assert.Equal(t, normalize(string(want)), normalize(string(code)), "%s is stale; run go generate ./msgs", file)
	}
}

func TestApplyFlags(t *testing.T) {
	cfg := config.Default()
	applyFlags(cfg, " defs , other/", "out", "example.com/gen", "")
	assert.Equal(t, []string{"defs", "other"}, cfg.Paths)
	assert.Equal(t, "out", cfg.Generate.Output)
	assert.Equal(t, "example.com/gen", cfg.Generate.Prefix)
	assert.Equal(t, "example.com/gen", cfg.Generate.Registry)

	cfg = config.Default()
	applyFlags(cfg, "", "", "", "example.com/schemas")
	assert.Nil(t, cfg.Paths)
	assert.Equal(t, config.DefaultPrefix, cfg.Generate.Prefix)
	assert.Equal(t, "example.com/schemas", cfg.Generate.Registry)
}

func TestLoadDefinitionsAndGenerate(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "body_ext", "msg")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Grip.msg"),
		[]byte("Header header\nbody_msgs/Hand hand\nfloat32 strength\n"), 0644))

	reg, names, err := loadDefinitions([]string{root}, true, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"body_ext/Grip"}, names)

	out := t.TempDir()
	file, err := generateMessage(reg.MustLookup("body_ext/Grip"), out, testOpts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "body_ext", "grip.go"), file)

	code, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(code), "Hand     body_msgs.Hand")

	alone, _, err := loadDefinitions([]string{root}, false, zap.NewNop())
	require.NoError(t, err)
	_, err = alone.Lookup("body_ext/Grip")
	assert.ErrorIs(t, err, rosmsg.ErrUnknownType)

	_, _, err = loadDefinitions([]string{t.TempDir()}, true, zap.NewNop())
	assert.ErrorContains(t, err, "no .msg files")
}

func TestLoadDefinitionsBundled(t *testing.T) {
	_, names, err := loadDefinitions(nil, true, zap.NewNop())
	require.NoError(t, err)
	assert.Contains(t, names, "body_msgs/Skeleton")
	assert.Len(t, names, 15)
}
