package gwater

import "fmt"

// Aquifer holds the static soil/aquifer properties shared by reference among
// the subcatchments that declare it. Built once from input, validated once
// before simulation start, immutable thereafter.
type Aquifer struct {
	Name           string
	Porosity       float64   // void volume / total volume
	WiltingPoint   float64   // moisture content where plants can no longer draw water
	FieldCapacity  float64   // moisture content where free drainage ceases
	Conductivity   float64   // saturated hydraulic conductivity [ft/s]
	ConductSlope   float64   // slope of ln(conductivity) v. moisture content
	TensionSlope   float64   // slope of soil tension v. moisture content [ft]
	UpperEvapFrac  float64   // fraction of potential evaporation available to the upper zone
	LowerEvapDepth float64   // depth over which lower zone evaporation can occur [ft]
	LowerLossCoeff float64   // deep seepage rate when fully saturated [ft/s]
	BottomElev     float64   // elevation of aquifer bottom [ft]
	WaterTableElev float64   // initial water table elevation [ft]
	UpperMoisture  float64   // initial moisture content of the unsaturated zone
	EvapPattern    []float64 // optional monthly upper-zone evaporation factors (12 entries)
}

// Validate checks the aquifer's parameter ranges. The returned error is
// advisory: the caller decides whether accumulated input errors block the
// simulation from starting.
func (a *Aquifer) Validate() error {
	if a.Porosity <= 0. ||
		a.FieldCapacity >= a.Porosity ||
		a.WiltingPoint >= a.FieldCapacity ||
		a.Conductivity <= 0. ||
		a.ConductSlope < 0. ||
		a.TensionSlope < 0. ||
		a.UpperEvapFrac < 0. ||
		a.LowerEvapDepth < 0. ||
		a.WaterTableElev < a.BottomElev ||
		a.UpperMoisture > a.Porosity ||
		a.UpperMoisture < a.WiltingPoint {
		return fmt.Errorf("aquifer %q: invalid parameter values", a.Name)
	}
	if a.EvapPattern != nil && len(a.EvapPattern) != 12 {
		return fmt.Errorf("aquifer %q: evaporation pattern requires 12 monthly factors, has %d", a.Name, len(a.EvapPattern))
	}
	return nil
}
