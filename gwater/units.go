package gwater

// Quantity enumerates the unit-conversion kinds used by the groundwater
// routines. Internal computations are carried in ft-s units; a UCF supplies
// the factors taking them to the user's unit system.
type Quantity int

const (
	Length   Quantity = iota // elevations, depths [ft]
	Rainfall                 // rainfall/percolation/seepage rates [ft/s]
	Flow                     // conveyance flow [ft³/s]
	GWFlow                   // groundwater exchange flow [ft/s]
	Landarea                 // subcatchment area [ft²]
	Mass                     // pollutant mass
)

// UCF returns the factor converting quantity kind k from internal to user units.
type UCF func(k Quantity) float64

func unityUCF(Quantity) float64 { return 1. }
