package gwater

import "fmt"

// Groundwater links a subcatchment to an aquifer and to the conveyance-network
// node it exchanges flow with, and owns the subcatchment's dynamic
// groundwater state.
type Groundwater struct {
	Aq   *Aquifer
	Node Node

	SurfElev   float64 // ground surface elevation [ft]
	A1, B1     float64 // coefficient & exponent of the water-table head term
	A2, B2     float64 // coefficient & exponent of the surface-water head term
	A3         float64 // surface/ground water interaction coefficient
	FixedDepth float64 // fixed surface water depth [ft]; 0 to use the node's depth
	NodeElev   float64 // flow-threshold datum [ft]; Missing to use the node's invert

	// inheritable from the aquifer when left Missing
	BottomElev     float64 // [ft]
	WaterTableElev float64 // [ft]
	UpperMoisture  float64

	latFlowExpr  Expr
	deepFlowExpr Expr

	// dynamic state, mutated once per time step
	Theta       float64 // upper zone moisture content
	LowerDepth  float64 // depth of lower saturated zone [ft]
	OldFlow     float64 // lateral flow at start of current time step [ft/s]
	NewFlow     float64 // lateral flow at end of current time step [ft/s]
	EvapLoss    float64 // combined upper+lower evaporation rate [ft/s]
	MaxInfilVol float64 // max infiltration the upper zone can accept, as depth over pervious area [ft]
}

// NewGroundwater returns a linkage with the optional parameters left unset.
func NewGroundwater(aq *Aquifer, nd Node) *Groundwater {
	return &Groundwater{
		Aq:             aq,
		Node:           nd,
		NodeElev:       Missing,
		BottomElev:     Missing,
		WaterTableElev: Missing,
		UpperMoisture:  Missing,
	}
}

// Subcatch is the subcatchment-side view needed by the groundwater routines.
// GW is nil for subcatchments with no groundwater linkage.
type Subcatch struct {
	Name     string
	Area     float64 // [ft²]
	FracPerv float64 // pervious fraction of area
	GW       *Groundwater
}

// Validate resolves linkage parameters left unspecified at input time from
// the bound aquifer and checks elevation consistency. Advisory, as with
// Aquifer.Validate.
func (s *Subcatch) Validate() error {
	gw := s.GW
	if gw == nil {
		return nil
	}
	a := gw.Aq
	if gw.BottomElev == Missing {
		gw.BottomElev = a.BottomElev
	}
	if gw.WaterTableElev == Missing {
		gw.WaterTableElev = a.WaterTableElev
	}
	if gw.UpperMoisture == Missing {
		gw.UpperMoisture = a.UpperMoisture
	}
	if gw.SurfElev < gw.WaterTableElev {
		return fmt.Errorf("subcatchment %q: ground elevation below initial water table", s.Name)
	}
	return nil
}

// InitState seeds the groundwater state from the (possibly inherited) initial
// parameters, keeping moisture and depth strictly off their saturation bounds.
func (s *Subcatch) InitState() {
	gw := s.GW
	if gw == nil {
		return
	}
	a := gw.Aq

	gw.Theta = gw.UpperMoisture
	if gw.Theta >= a.Porosity {
		gw.Theta = a.Porosity - xtol
	}

	gw.LowerDepth = gw.WaterTableElev - gw.BottomElev
	if gw.LowerDepth >= gw.SurfElev-gw.BottomElev {
		gw.LowerDepth = gw.SurfElev - gw.BottomElev - xtol
	}

	gw.OldFlow = 0.
	gw.NewFlow = 0.
	gw.EvapLoss = 0.

	gw.MaxInfilVol = (gw.SurfElev - gw.WaterTableElev) * (a.Porosity - gw.Theta) / s.FracPerv
}

// State returns the physical state vector used for hotstart persistence:
// moisture content, water table elevation [ft], lateral flow [ft/s] and max
// infiltration volume [ft].
func (gw *Groundwater) State() (theta, waterTableElev, latFlow, maxInfilVol float64) {
	return gw.Theta, gw.BottomElev + gw.LowerDepth, gw.NewFlow, gw.MaxInfilVol
}

// SetState restores a hotstart state vector. maxInfilVol may be Missing to
// retain the current value.
func (gw *Groundwater) SetState(theta, waterTableElev, latFlow, maxInfilVol float64) {
	gw.Theta = theta
	gw.LowerDepth = waterTableElev - gw.BottomElev
	gw.OldFlow = latFlow
	if maxInfilVol != Missing {
		gw.MaxInfilVol = maxInfilVol
	}
}

// Volume returns the groundwater stored in both zones as an equivalent depth
// over the subcatchment [ft].
func (gw *Groundwater) Volume() float64 {
	upperDepth := gw.SurfElev - gw.BottomElev - gw.LowerDepth
	return upperDepth*gw.Theta + gw.LowerDepth*gw.Aq.Porosity
}
