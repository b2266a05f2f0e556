package gwater

import (
	"fmt"
	"log"
	"math"
	"time"
)

// Model steps the groundwater of a registered set of subcatchments. EvapRate
// and Month are ambient boundary conditions the caller keeps current as the
// simulation clock advances; the sinks are optional write-only collectors.
type Model struct {
	Integrate Integrator // adaptive ODE stepper
	Parser    Parser     // flow-equation parser; needed only when binding equations
	Ucf       UCF        // unit conversions; unity when nil

	EvapRate float64    // current max potential evaporation rate [ft/s]
	Month    time.Month // current simulation month, indexes evaporation patterns

	MassBal MassBalSink
	Stats   StatsSink

	subs map[string]*Subcatch
}

// New constructs a Model around the supplied ODE stepper.
func New(integrate Integrator) *Model {
	if integrate == nil {
		log.Panic("gwater.New: an ODE integrator is required")
	}
	return &Model{
		Integrate: integrate,
		subs:      make(map[string]*Subcatch),
	}
}

// Add registers a subcatchment with the model.
func (m *Model) Add(s *Subcatch) {
	m.subs[s.Name] = s
}

// Subcatch returns the registered subcatchment of the given name, nil if none.
func (m *Model) Subcatch(name string) *Subcatch {
	return m.subs[name]
}

// TotalStoredVolume returns the groundwater stored under subcatchment name as
// an equivalent depth [ft], for mass-balance initialization.
func (m *Model) TotalStoredVolume(name string) float64 {
	s, ok := m.subs[name]
	if !ok || s.GW == nil {
		return 0.
	}
	return s.GW.Volume()
}

// Step computes the groundwater fluxes of subcatchment name over the current
// time step and commits the resulting state.
//
//	evap:  pervious surface evaporation volume already consumed [ft³]
//	infil: surface infiltration volume [ft³]
//	tstep: time step [s]
func (m *Model) Step(name string, evap, infil, tstep float64) error {
	s, ok := m.subs[name]
	if !ok {
		return fmt.Errorf("gwater: unknown subcatchment %q", name)
	}
	gw := s.GW
	if gw == nil || tstep <= 0. {
		return nil
	}

	ucf := m.Ucf
	if ucf == nil {
		ucf = unityUCF
	}

	fx := fluxes{
		gw:       gw,
		a:        *gw.Aq,
		ucf:      ucf,
		latExpr:  gw.latFlowExpr,
		deepExpr: gw.deepFlowExpr,
	}

	fx.fracPerv = s.FracPerv
	if fx.fracPerv <= 0. {
		return nil
	}
	fx.area = s.Area
	fx.tstep = tstep

	// volumes [ft³] to equivalent rates over the full subcatchment area
	fx.infil = infil / fx.area / tstep
	evapRate := evap / fx.area / tstep

	// groundwater evaporation acts only through the pervious surface; what
	// remains is the max rate less the surface evaporation already exerted
	fx.maxEvap = m.EvapRate * fx.fracPerv
	fx.availEvap = math.Max(fx.maxEvap-evapRate, 0.)

	fx.evapFactor = 1.
	if pat := fx.a.EvapPattern; pat != nil && m.Month >= time.January && m.Month <= time.December {
		fx.evapFactor = pat[int(m.Month)-1]
	}

	fx.totalDepth = gw.SurfElev - gw.BottomElev
	if fx.totalDepth <= 0. {
		return nil
	}
	nd := gw.Node

	// min. water table height at which lateral flow can occur; an explicit
	// datum on the linkage overrides the node's invert
	if gw.NodeElev != Missing {
		fx.hstar = gw.NodeElev - gw.BottomElev
	} else {
		fx.hstar = nd.InvertElev() - gw.BottomElev
	}

	// surface water height at the node, relative to the aquifer bottom
	if gw.FixedDepth > 0. {
		fx.hsw = gw.FixedDepth + nd.InvertElev() - gw.BottomElev
	} else {
		fx.hsw = nd.Depth() + nd.InvertElev() - gw.BottomElev
	}

	x := [2]float64{}
	x[itheta] = gw.Theta
	x[ilower] = gw.LowerDepth

	// limit on upper-to-lower percolation from the moisture surplus above
	// field capacity
	vUpper := (fx.totalDepth - x[ilower]) * (x[itheta] - fx.a.FieldCapacity)
	fx.maxUpperPerc = math.Max(0., vUpper) / tstep

	// limit on outflow from the volume of the lower zone
	fx.maxGWFlowPos = x[ilower] * fx.a.Porosity / tstep

	// limit on inflow from the node: capacity of the upper zone or the node's
	// own available inflow, whichever is smaller
	maxNeg := (fx.totalDepth - x[ilower]) * (fx.a.Porosity - x[itheta]) / tstep
	nodeFlow := (nd.Inflow() + nd.Volume()/tstep) / fx.area
	fx.maxGWFlowNeg = -math.Min(maxNeg, nodeFlow)

	if err := m.Integrate(x[:], 0., tstep, gwtol, tstep, fx.derivs); err != nil {
		return fmt.Errorf("gwater: integration failed for %q: %v", name, err)
	}

	// keep the state within its physical bounds; moisture reaching porosity
	// collapses the unsaturated zone
	x[itheta] = math.Max(x[itheta], fx.a.WiltingPoint)
	if x[itheta] >= fx.a.Porosity {
		x[itheta] = fx.a.Porosity - xtol
		x[ilower] = fx.totalDepth - xtol
	}
	x[ilower] = math.Max(x[ilower], 0.)
	if x[ilower] >= fx.totalDepth {
		x[ilower] = fx.totalDepth - xtol
	}

	// commit, then freeze the fluxes at the committed state so reported rates
	// are consistent with it
	gw.Theta = x[itheta]
	gw.LowerDepth = x[ilower]
	fx.compute(gw.Theta, gw.LowerDepth)
	gw.OldFlow = gw.NewFlow
	gw.NewFlow = fx.gwFlow
	gw.EvapLoss = fx.upperEvap + fx.lowerEvap

	// max infiltration volume the upper zone can accept next step, as a depth
	// over the pervious portion of the subcatchment
	gw.MaxInfilVol = (fx.totalDepth - x[ilower]) * (fx.a.Porosity - x[itheta]) / fx.fracPerv

	if m.MassBal != nil {
		f := fx.area * tstep
		m.MassBal.AddGwaterTotals(
			fx.infil*f,
			fx.upperEvap*f,
			fx.lowerEvap*f,
			fx.lowerLoss*f,
			0.5*(gw.OldFlow+gw.NewFlow)*f)
	}
	if m.Stats != nil {
		m.Stats.UpdateGwaterStats(s.Name, fx.infil, gw.EvapLoss, fx.gwFlow,
			fx.lowerLoss, gw.Theta, gw.LowerDepth+gw.BottomElev, tstep)
	}
	return nil
}
