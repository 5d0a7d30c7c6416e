package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zphilip/handDetect/internal/capture"
	"github.com/zphilip/handDetect/msgs"
	"github.com/zphilip/handDetect/msgs/geometry_msgs"
	"github.com/zphilip/handDetect/rosmsg"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(args, &out)
	return out.String(), err
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func pose2DPayload(t *testing.T) []byte {
	t.Helper()
	b, err := (&geometry_msgs.Pose2D{X: 1, Y: 2, Theta: 0.5}).MarshalROS()
	require.NoError(t, err)
	return b
}

func TestSchemaCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"md5", "geometry_msgs/Pose2D"}, "938fa65709584ad8e77d238529be13b8\n"},
		{[]string{"md5", "body_msgs/Hands"}, "a7c0ad4d5951381fcf2e9fdf1233819e\n"},
		{[]string{"size", "geometry_msgs/Pose2D"}, "24\n"},
		{[]string{"size", "body_msgs/Skeleton"}, "64\n"},
		{[]string{"size", "body_msgs/Hand"}, "variable\n"},
		{[]string{"show", "geometry_msgs/Pose2D"}, "# This expresses a position and orientation on a 2D manifold.\n\nfloat64 x\nfloat64 y\nfloat64 theta\n"},
		{[]string{"header", "geometry_msgs/Pose2D"}, "md5sum=938fa65709584ad8e77d238529be13b8\ntype=geometry_msgs/Pose2D\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := runCmd(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestList(t *testing.T) {
	out, err := runCmd(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 15)
	assert.Equal(t, "body_msgs/Hand", lines[0])
	assert.Contains(t, lines, "std_msgs/Header")
}

func TestShowIncludesDependencies(t *testing.T) {
	out, err := runCmd(t, "show", "geometry_msgs/PoseStamped")
	require.NoError(t, err)
	assert.Contains(t, out, "MSG: std_msgs/Header")
	assert.Contains(t, out, "MSG: geometry_msgs/Quaternion")
}

func TestHeaderRaw(t *testing.T) {
	out, err := runCmd(t, "header", "-raw", "geometry_msgs/Pose2D")
	require.NoError(t, err)
	h, err := rosmsg.DecodeConnectionHeader([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "geometry_msgs/Pose2D", h[rosmsg.HeaderKeyType])
	assert.Contains(t, h[rosmsg.HeaderKeyDefinition], "float64 theta")
}

func TestDecode(t *testing.T) {
	file := writeFile(t, t.TempDir(), "pose.bin", pose2DPayload(t))

	out, err := runCmd(t, "decode", "geometry_msgs/Pose2D", file)
	require.NoError(t, err)
	assert.Equal(t, "x: 1\ny: 2\ntheta: 0.5\n", out)

	out, err = runCmd(t, "decode", "geometry_msgs/Pose2D", file, "-format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1,"y":2,"theta":0.5}`, out)
	assert.True(t, strings.HasSuffix(out, "\n"))

	_, err = runCmd(t, "decode", "-format", "yaml", "geometry_msgs/Pose2D", file)
	assert.ErrorContains(t, err, "unknown export format")

	_, err = runCmd(t, "decode", "geometry_msgs/Pose", file)
	assert.ErrorIs(t, err, rosmsg.ErrBufferTruncated)

	_, err = runCmd(t, "decode", "geometry_msgs/Point32", file)
	assert.ErrorIs(t, err, rosmsg.ErrTrailingBytes)
}

func TestDecodeWithHeader(t *testing.T) {
	s, err := loadTypes(nil, nil)
	require.NoError(t, err)
	pose2D := s.MustLookup("geometry_msgs/Pose2D")

	h := rosmsg.NewConnectionHeader(pose2D)
	h[rosmsg.HeaderKeyCallerID] = "/hand_tracker"
	dir := t.TempDir()
	good := writeFile(t, dir, "good.bin", append(h.Encode(), pose2DPayload(t)...))

	out, err := runCmd(t, "decode", "-header", "-format", "text", "geometry_msgs/Pose2D", good)
	require.NoError(t, err)
	assert.Equal(t, "x: 1\ny: 2\ntheta: 0.5\n", out)

	_, err = runCmd(t, "decode", "-header", "geometry_msgs/Point", good)
	assert.ErrorIs(t, err, rosmsg.ErrSchemaMismatch)

	short := writeFile(t, dir, "short.bin", []byte{0xff, 0, 0, 0, 1})
	_, err = runCmd(t, "decode", "-header", "geometry_msgs/Pose2D", short)
	assert.ErrorIs(t, err, rosmsg.ErrLengthOverflow)
}

func TestDecodeFrames(t *testing.T) {
	var buf bytes.Buffer
	w := capture.NewWriter(&buf)
	require.NoError(t, w.WriteHeader(rosmsg.NewConnectionHeader(msgs.MustLookup(geometry_msgs.Pose2D_Type))))
	require.NoError(t, w.WriteTyped(&geometry_msgs.Pose2D{X: 1}))
	require.NoError(t, w.WriteTyped(&geometry_msgs.Pose2D{Y: 2}))
	file := writeFile(t, t.TempDir(), "poses.cap", buf.Bytes())

	out, err := runCmd(t, "decode", "-frames", "-header", "geometry_msgs/Pose2D", file)
	require.NoError(t, err)
	assert.Equal(t, "x: 1\ny: 0\ntheta: 0\n---\nx: 0\ny: 2\ntheta: 0\n---\n", out)

	out, err = runCmd(t, "decode", "-frames", "-header", "-format", "json", "geometry_msgs/Pose2D", file)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"x":0,"y":2,"theta":0}`, lines[1])

	_, err = runCmd(t, "decode", "-frames", "geometry_msgs/Pose2D", file)
	assert.Error(t, err, "the header block is not a Pose2D frame")
}

func TestExtraPathsFromConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "defs/hand_ext/msg/Grip.msg", []byte("Header header\nfloat32 strength\n"))
	cfg := writeFile(t, dir, "rosmsg.yaml", []byte("paths:\n  - "+filepath.Join(dir, "defs")+"\n"))

	out, err := runCmd(t, "-config", cfg, "size", "hand_ext/Grip")
	require.NoError(t, err)
	assert.Equal(t, "variable\n", out)

	out, err = runCmd(t, "-config", cfg, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "hand_ext/Grip\n")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no command", nil, "usage"},
		{"unknown command", []string{"publish"}, `unknown command "publish"`},
		{"md5 without type", []string{"md5"}, "usage: md5 TYPE"},
		{"decode without file", []string{"decode", "geometry_msgs/Pose2D"}, "usage: decode"},
		{"list with args", []string{"list", "x"}, "no arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCmd(t, tt.args...)
			assert.ErrorContains(t, err, tt.want)
		})
	}

	_, err := runCmd(t, "md5", "body_msgs/Foot")
	assert.ErrorIs(t, err, rosmsg.ErrUnknownType)
}
