package gwater

import "math"

// fluxes is the working context of one Step call: a snapshot of the aquifer,
// the step's boundary conditions and rate limits, and the flux values of the
// latest evaluation. Each call owns its own instance, so distinct
// subcatchments may be stepped concurrently.
type fluxes struct {
	gw  *Groundwater
	a   Aquifer // copy of the aquifer's properties
	ucf UCF

	latExpr, deepExpr Expr

	// boundary conditions, fixed over the step
	fracPerv   float64 // pervious fraction of subcatchment area
	area       float64 // subcatchment area [ft²]
	infil      float64 // infiltration rate over the subcatchment [ft/s]
	tstep      float64 // time step [s]
	maxEvap    float64 // max evaporation rate through the pervious surface [ft/s]
	availEvap  float64 // evaporation remaining after surface evaporation [ft/s]
	totalDepth float64 // ground surface to aquifer bottom [ft]
	hstar      float64 // water table height where lateral flow begins [ft]
	hsw        float64 // surface water height above aquifer bottom [ft]
	evapFactor float64 // monthly upper-zone evaporation adjustment

	// rate limits, fixed over the step
	maxUpperPerc float64 // [ft/s]
	maxGWFlowPos float64 // aquifer-to-node limit [ft/s]
	maxGWFlowNeg float64 // node-to-aquifer limit [ft/s], ≤0

	// values at the latest evaluation
	hgw       float64 // water table height [ft]
	theta     float64
	hydcon    float64 // unsaturated conductivity [ft/s]
	upperEvap float64 // [ft/s]
	lowerEvap float64 // [ft/s]
	upperPerc float64 // [ft/s]
	lowerLoss float64 // deep seepage [ft/s]
	gwFlow    float64 // lateral flow, positive toward the node [ft/s]
}

// compute evaluates all fluxes at (theta, lowerDepth). Invoked repeatedly by
// the ODE solver and once more at the committed state.
func (fx *fluxes) compute(theta, lowerDepth float64) {
	lowerDepth = math.Max(lowerDepth, 0.)
	lowerDepth = math.Min(lowerDepth, fx.totalDepth)
	upperDepth := fx.totalDepth - lowerDepth
	fx.hgw = lowerDepth
	fx.theta = theta

	fx.evapRates(theta, upperDepth)

	fx.hydcon = fx.a.Conductivity * math.Exp((theta-fx.a.Porosity)*fx.a.ConductSlope)
	fx.upperPerc = math.Min(fx.upperPercRate(theta, upperDepth), fx.maxUpperPerc)

	// deep seepage; a bound user equation replaces the built-in term
	if fx.deepExpr != nil {
		fx.lowerLoss = fx.deepExpr.Eval(fx.varValue) / fx.ucf(Rainfall)
	} else {
		fx.lowerLoss = fx.a.LowerLossCoeff * lowerDepth / fx.totalDepth
	}
	fx.lowerLoss = math.Min(fx.lowerLoss, lowerDepth/fx.tstep)

	// lateral flow to the node; a bound user equation adds to the built-in law
	fx.gwFlow = fx.lateralFlow(lowerDepth)
	if fx.latExpr != nil {
		fx.gwFlow += fx.latExpr.Eval(fx.varValue) / fx.ucf(GWFlow)
	}
	if fx.gwFlow >= 0. {
		fx.gwFlow = math.Min(fx.gwFlow, fx.maxGWFlowPos)
	} else {
		fx.gwFlow = math.Max(fx.gwFlow, fx.maxGWFlowNeg)
	}
}

func (fx *fluxes) varValue(v Variable) float64 { return v.value(fx) }

// evapRates computes evapotranspiration out of both zones. Infiltration
// suppresses all groundwater evaporation.
func (fx *fluxes) evapRates(theta, upperDepth float64) {
	fx.upperEvap = 0.
	fx.lowerEvap = 0.
	if fx.infil > 0. {
		return
	}

	upperFrac := fx.a.UpperEvapFrac * fx.evapFactor

	// upper zone evaporation requires moisture above the wilting point
	if theta > fx.a.WiltingPoint {
		fx.upperEvap = math.Min(upperFrac*fx.maxEvap, fx.availEvap)
	}

	if fx.a.LowerEvapDepth > 0. {
		// fraction of the lower evaporation depth reaching the saturated zone
		lowerFrac := (fx.a.LowerEvapDepth - upperDepth) / fx.a.LowerEvapDepth
		lowerFrac = math.Max(0., lowerFrac)
		lowerFrac = math.Min(lowerFrac, 1.)
		fx.lowerEvap = lowerFrac * (1. - upperFrac) * fx.maxEvap
		fx.lowerEvap = math.Min(fx.lowerEvap, fx.availEvap-fx.upperEvap)
	}
}

// upperPercRate returns the upper-to-lower percolation rate [ft/s].
func (fx *fluxes) upperPercRate(theta, upperDepth float64) float64 {
	if upperDepth <= 0. || theta <= fx.a.FieldCapacity {
		return 0.
	}
	dhdz := 1. + fx.a.TensionSlope*2.*(theta-fx.a.FieldCapacity)/upperDepth
	return fx.hydcon * dhdz
}

// lateralFlow evaluates the built-in three-term outflow law [ft/s]. The water
// table must stand above the flow threshold for any exchange to occur.
func (fx *fluxes) lateralFlow(lowerDepth float64) float64 {
	gw := fx.gw
	if lowerDepth <= fx.hstar {
		return 0.
	}

	var t1, t2 float64
	if gw.B1 == 0. {
		t1 = gw.A1
	} else {
		t1 = gw.A1 * math.Pow((lowerDepth-fx.hstar)*fx.ucf(Length), gw.B1)
	}

	if gw.B2 == 0. {
		t2 = gw.A2
	} else if fx.hsw > fx.hstar {
		t2 = gw.A2 * math.Pow((fx.hsw-fx.hstar)*fx.ucf(Length), gw.B2)
	}

	t3 := gw.A3 * lowerDepth * fx.hsw * fx.ucf(Length) * fx.ucf(Length)

	q := (t1 - t2 + t3) / fx.ucf(GWFlow)
	if q < 0. && gw.A3 != 0. {
		q = 0. // the interaction term is not allowed to reverse the flow
	}
	return q
}

// derivs computes the time derivatives of moisture content and lower-zone
// depth. Degenerate denominators force a zero derivative rather than an
// error; this keeps the solver stable near full saturation or full dryness.
func (fx *fluxes) derivs(t float64, x, dxdt []float64) {
	fx.compute(x[itheta], x[ilower])
	qUpper := fx.infil - fx.upperEvap - fx.upperPerc
	qLower := fx.upperPerc - fx.lowerLoss - fx.lowerEvap - fx.gwFlow

	if denom := fx.totalDepth - x[ilower]; denom > 0. {
		dxdt[itheta] = qUpper / denom
	} else {
		dxdt[itheta] = 0.
	}

	if denom := fx.a.Porosity - x[itheta]; denom > 0. {
		dxdt[ilower] = qLower / denom
	} else {
		dxdt[ilower] = 0.
	}
}
