package events

// Sensor names an event-camera model and its pixel geometry. Geometry
// here is the full sensor plane as per the manufacturer datasheet;
// region-of-interest crops keep the full geometry and simply emit a
// narrower coordinate range.
type Sensor struct {
	Name   string
	Width  int
	Height int
}

// Known sensor geometries.
var (
	DVS128        = Sensor{Name: "DVS128", Width: 128, Height: 128}
	DAVIS240C     = Sensor{Name: "DAVIS240C", Width: 240, Height: 180}
	DAVIS346      = Sensor{Name: "DAVIS346", Width: 346, Height: 260}
	PropheseeGen3 = Sensor{Name: "PropheseeGen3", Width: 640, Height: 480}
	PropheseeGen4 = Sensor{Name: "PropheseeGen4", Width: 1280, Height: 720}
)

// Sensors lists the known geometries in ascending resolution order.
var Sensors = []Sensor{DVS128, DAVIS240C, DAVIS346, PropheseeGen3, PropheseeGen4}

// SensorByName looks up a known sensor geometry by model name. The
// lookup is case sensitive.
func SensorByName(name string) (Sensor, bool) {
	for _, s := range Sensors {
		if s.Name == name {
			return s, true
		}
	}
	return Sensor{}, false
}

// Config returns a PacketConfig carrying the sensor's geometry.
func (s Sensor) Config() PacketConfig {
	return PacketConfig{Width: s.Width, Height: s.Height}
}

// Contains reports whether the pixel (x, y) lies on the sensor plane.
func (s Sensor) Contains(x, y uint16) bool {
	return int(x) < s.Width && int(y) < s.Height
}
