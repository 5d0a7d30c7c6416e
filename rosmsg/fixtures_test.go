package rosmsg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var fixtureDefinitions = map[string]string{
	"std_msgs/Header": `# Standard metadata for higher-level stamped data types.
uint32 seq
time stamp
string frame_id
`,
	"geometry_msgs/Point":      "float64 x\nfloat64 y\nfloat64 z\n",
	"geometry_msgs/Vector3":    "float64 x\nfloat64 y\nfloat64 z\n",
	"geometry_msgs/Point32":    "float32 x\nfloat32 y\nfloat32 z\n",
	"geometry_msgs/Quaternion": "float64 x\nfloat64 y\nfloat64 z\nfloat64 w\n",
	"geometry_msgs/Pose": `# A representation of pose in free space
Point position
Quaternion orientation
`,
	"geometry_msgs/Pose2D":            "float64 x\nfloat64 y\nfloat64 theta\n",
	"geometry_msgs/PoseStamped":       "Header header\nPose pose\n",
	"geometry_msgs/QuaternionStamped": "Header header\nQuaternion quaternion\n",
	"geometry_msgs/Transform":         "Vector3 translation\nQuaternion rotation\n",
	"sensor_msgs/PointField": `uint8 INT8    = 1
uint8 UINT8   = 2
uint8 INT16   = 3
uint8 UINT16  = 4
uint8 INT32   = 5
uint8 UINT32  = 6
uint8 FLOAT32 = 7
uint8 FLOAT64 = 8

string name      # Name of field
uint32 offset    # Offset from start of point struct
uint8  datatype  # Datatype enumeration, see above
uint32 count     # How many elements in the field
`,
	"sensor_msgs/PointCloud2": `Header header
uint32 height
uint32 width
PointField[] fields
bool    is_bigendian
uint32  point_step
uint32  row_step
uint8[] data
bool is_dense
`,
	"test_msgs/Name":  "string name\n",
	"test_msgs/Empty": "",
	"test_msgs/Many":  "Empty[] items\n",
	"test_msgs/Fixed": "float64[3] v\nuint8[4] b\n",
	"test_msgs/Mixed": `bool flag
byte b
char c
int16 i16
uint16 u16
int32 i32
uint32 u32
int64 i64
uint64 u64
float32 f32
duration d
string[] names
int32[] vals
geometry_msgs/Point[2] pts
geometry_msgs/Point32[] cloud
time[] stamps
`,
}

func fixtureRegistry(t testing.TB) *Registry {
	t.Helper()
	r := NewRegistry()
	for name, text := range fixtureDefinitions {
		require.NoError(t, r.Add(name, text), name)
	}
	return r
}

func lookup(t testing.TB, name string) *Schema {
	t.Helper()
	s, err := fixtureRegistry(t).Lookup(name)
	require.NoError(t, err)
	return s
}

func mustSet(t testing.TB, m *Message, name string, v any) {
	t.Helper()
	require.NoError(t, m.Set(name, v))
}
