// Package gwater models the coupled two-zone soil/aquifer system draining to a
// conveyance-network node. An unsaturated upper zone, characterized by its
// moisture content, sits above a saturated lower zone characterized by its
// depth; the pair is advanced through time by an external adaptive ODE solver
// while the package computes the evaporation, percolation, deep-seepage and
// lateral-exchange fluxes that drive it.
package gwater

const (
	gwtol = 0.0001 // ODE solver tolerance
	xtol  = 0.001  // pinning tolerance keeping moisture & depth off their saturation bounds
)

// state-vector indices handed to the ODE solver
const (
	itheta = iota // moisture content of upper zone
	ilower        // depth of lower saturated zone
)

// Missing marks optional input parameters left unspecified.
const Missing = -1.e10
