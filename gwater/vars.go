package gwater

import "strings"

// Variable identifies a physical quantity that user-supplied flow equations
// may reference. The set is closed; each member maps to a single field of the
// per-step flux context so that every evaluation within one step sees one
// consistent instant.
type Variable int

const (
	Hgw   Variable = iota // water table height above aquifer bottom
	Hsw                   // surface water height above aquifer bottom
	Hcb                   // channel bottom (flow threshold) height
	Hgs                   // ground surface height above aquifer bottom
	Ks                    // saturated hydraulic conductivity
	K                     // unsaturated hydraulic conductivity
	Theta                 // upper zone moisture content
	Phi                   // soil porosity
	Fi                    // surface infiltration rate
	Fu                    // upper zone percolation rate
	Area                  // subcatchment area
	nvars
)

var varWords = [nvars]string{"HGW", "HSW", "HCB", "HGS", "KS", "K", "THETA", "PHI", "FI", "FU", "A"}

func (v Variable) String() string {
	if v < 0 || v >= nvars {
		return "?"
	}
	return varWords[v]
}

// VariableFromName matches s (case-insensitive) against the variable-name
// table. Unknown names are a parse-time failure surfaced by the caller.
func VariableFromName(s string) (Variable, bool) {
	for i, w := range varWords {
		if strings.EqualFold(s, w) {
			return Variable(i), true
		}
	}
	return -1, false
}

// value reads v from the per-step snapshot, converted to user units.
func (v Variable) value(fx *fluxes) float64 {
	switch v {
	case Hgw:
		return fx.hgw * fx.ucf(Length)
	case Hsw:
		return fx.hsw * fx.ucf(Length)
	case Hcb:
		return fx.hstar * fx.ucf(Length)
	case Hgs:
		return fx.totalDepth * fx.ucf(Length)
	case Ks:
		return fx.a.Conductivity * fx.ucf(Rainfall)
	case K:
		return fx.hydcon * fx.ucf(Rainfall)
	case Theta:
		return fx.theta
	case Phi:
		return fx.a.Porosity
	case Fi:
		return fx.infil * fx.ucf(Rainfall)
	case Fu:
		return fx.upperPerc * fx.ucf(Rainfall)
	case Area:
		return fx.area * fx.ucf(Landarea)
	default:
		return 0.
	}
}
