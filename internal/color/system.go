package color

import "fmt"

// System identifies the chromaticity plane a coordinate pair belongs to.
type System uint8

const (
	// SystemXY is the CIE 1931 (x, y) chromaticity plane.
	SystemXY System = iota
	// SystemUV is the CIE 1976 (u′, v′) uniform chromaticity plane.
	SystemUV
	// SystemLab is the CIE L*a*b* (a*, b*) plane at full lightness.
	SystemLab
)

// String returns the conventional short name of the system.
func (s System) String() string {
	switch s {
	case SystemXY:
		return "xy"
	case SystemUV:
		return "uv"
	case SystemLab:
		return "lab"
	default:
		return fmt.Sprintf("System(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the known systems.
func (s System) Valid() bool {
	return s <= SystemLab
}

// ParseSystem converts a short name as returned by String back to a System.
func ParseSystem(name string) (System, error) {
	switch name {
	case "xy", "cie1931", "CIExy":
		return SystemXY, nil
	case "uv", "cie1976", "CIEuv":
		return SystemUV, nil
	case "lab", "Lab", "CIELab":
		return SystemLab, nil
	}
	return 0, fmt.Errorf("color: unknown coordinate system %q", name)
}
