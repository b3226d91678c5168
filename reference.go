package gamut

import (
	"fmt"
	"sort"
)

// Reference is a display color reference: three primaries and a white
// point. Chromaticities in any plane are accepted; they are converted to
// CIE 1931 xy before use.
//
// A Reference is read-only input to a render call; it usually comes from
// calibration state owned by the caller.
type Reference struct {
	Name             string
	Red, Green, Blue Chromaticity
	White            Chromaticity
}

// D65 is the CIE standard illuminant D65.
var D65 = XY(0.3127, 0.3290)

// Named references.
var (
	// SRGB is sRGB / ITU-R BT.709.
	SRGB = Reference{
		Name:  "srgb",
		Red:   XY(0.64, 0.33),
		Green: XY(0.30, 0.60),
		Blue:  XY(0.15, 0.06),
		White: D65,
	}

	// EBU is the EBU Tech. 3213 (PAL/SECAM) reference.
	EBU = Reference{
		Name:  "ebu",
		Red:   XY(0.64, 0.33),
		Green: XY(0.29, 0.60),
		Blue:  XY(0.15, 0.06),
		White: D65,
	}

	// SMPTEC is the SMPTE RP 145 (SMPTE-C) reference.
	SMPTEC = Reference{
		Name:  "smptec",
		Red:   XY(0.630, 0.340),
		Green: XY(0.310, 0.595),
		Blue:  XY(0.155, 0.070),
		White: D65,
	}

	// Rec2020 is ITU-R BT.2020.
	Rec2020 = Reference{
		Name:  "rec2020",
		Red:   XY(0.708, 0.292),
		Green: XY(0.170, 0.797),
		Blue:  XY(0.131, 0.046),
		White: D65,
	}

	// DisplayP3 is DCI-P3 primaries with a D65 white.
	DisplayP3 = Reference{
		Name:  "p3",
		Red:   XY(0.680, 0.320),
		Green: XY(0.265, 0.690),
		Blue:  XY(0.150, 0.060),
		White: D65,
	}
)

var references = map[string]Reference{
	SRGB.Name:      SRGB,
	EBU.Name:       EBU,
	SMPTEC.Name:    SMPTEC,
	Rec2020.Name:   Rec2020,
	DisplayP3.Name: DisplayP3,
}

// ReferenceByName returns one of the named references.
func ReferenceByName(name string) (Reference, error) {
	ref, ok := references[name]
	if !ok {
		return Reference{}, fmt.Errorf("gamut: unknown reference %q (known: %v)", name, ReferenceNames())
	}
	return ref, nil
}

// ReferenceNames lists the names accepted by ReferenceByName, sorted.
func ReferenceNames() []string {
	names := make([]string, 0, len(references))
	for name := range references {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// primaries returns the primaries as CIE 1931 xy.
func (r Reference) primaries() [3]Chromaticity {
	return [3]Chromaticity{r.Red.To(CIExy), r.Green.To(CIExy), r.Blue.To(CIExy)}
}
