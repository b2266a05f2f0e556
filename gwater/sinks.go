package gwater

// MassBalSink accumulates groundwater flux volumes [ft³] over a time step.
// Implemented by the simulation-wide mass-balance ledger.
type MassBalSink interface {
	AddGwaterTotals(infilVol, upperEvapVol, lowerEvapVol, deepLossVol, netLateralVol float64)
}

// StatsSink records instantaneous groundwater rates and state for a
// subcatchment. Implemented by the simulation-wide statistics collector.
type StatsSink interface {
	UpdateGwaterStats(subcatch string, infil, evapLoss, latFlow, deepLoss, theta, waterTableElev, tstep float64)
}
