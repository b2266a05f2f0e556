package calib

import (
	"math"

	"github.com/maseology/goHydro/pet"
)

const (
	avgEp  = .1 / 366. / 86400. // average annual potential evaporation [ft/s]
	minEp  = 0.                 // baseline evaporation rate [ft/s]
	offset = -10                // offset to date of min Ep (winter solstice 10 days before new years)
)

// SinEp returns a sinusoidal annual potential evaporation rate for
// day-of-year doy [ft/s], for driving harness runs through the seasons.
func SinEp(doy int) float64 {
	return (avgEp-minEp)*(1.+math.Sin(2.*math.Pi*float64(doy-offset)/366.-math.Pi/2.)) + minEp
}

// MakkinkEp returns the Makkink potential evaporation estimate for
// day-of-year doy, computed from a synthetic annual course of global
// radiation and daily mean air temperature at standard pressure.
func MakkinkEp(doy int) float64 {
	f := math.Sin(2.*math.Pi*float64(doy-offset)/366. - math.Pi/2.)
	kg := 180. + 120.*f // global radiation [W/m²]
	tm := 8. + 12.*f    // daily mean temperature [°C]
	return pet.Makkink(kg, tm, 101300., .61, -1.2e-4)
}
