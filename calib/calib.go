// Package calib fits and sweeps the coefficients of the groundwater lateral
// outflow law against an observed outflow record.
package calib

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/dokzai/Stormwater-Management-Model/gwater"
	"github.com/maseology/glbopt"
	"github.com/maseology/mmaths"
	"github.com/maseology/mmio"
	"github.com/maseology/objfunc"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

const (
	ncmplx   = 8 // SCE complexes
	nsmpldim = 2 // (a1, b1)
)

// Config drives a lateral-coefficient search for one subcatchment.
type Config struct {
	Mdl   *gwater.Model
	Sub   string
	Obs   []float64  // observed lateral outflow [ft/s]
	Infil []float64  // infiltration volume per step [ft³], nil for none
	Evap  []float64  // surface evaporation volume consumed per step [ft³], nil for none
	Tstep float64    // [s]
	A1rng [2]float64 // search range of the head-term coefficient (log-linear)
	B1rng [2]float64 // search range of the head-term exponent (linear)
}

// run replays the record from the initial state, returning the simulated
// lateral outflow series.
func (c *Config) run() []float64 {
	s := c.Mdl.Subcatch(c.Sub)
	s.InitState()
	sim := make([]float64, len(c.Obs))
	for k := range sim {
		infil, evap := 0., 0.
		if c.Infil != nil {
			infil = c.Infil[k]
		}
		if c.Evap != nil {
			evap = c.Evap[k]
		}
		if err := c.Mdl.Step(c.Sub, evap, infil, c.Tstep); err != nil {
			log.Fatalf("calib run: %v", err)
		}
		sim[k] = s.GW.NewFlow
	}
	return sim
}

func (c *Config) par2(u []float64) (a1, b1 float64) {
	a1 = mmaths.LogLinearTransform(c.A1rng[0], c.A1rng[1], u[0])
	b1 = mmaths.LinearTransform(c.B1rng[0], c.B1rng[1], u[1])
	return
}

// Lateral searches the (a1, b1) coefficients of the built-in lateral outflow
// law by SCE, leaving the best pair on the linkage and returning it with its
// KGE.
func Lateral(c *Config) (a1, b1, kge float64) {
	tt := mmio.NewTimer()
	defer tt.Print("lateral-coefficient search complete")

	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())

	s := c.Mdl.Subcatch(c.Sub)
	gen := func(u []float64) float64 {
		s.GW.A1, s.GW.B1 = c.par2(u)
		return 1. - objfunc.KGE(c.Obs, c.run()) // SCE minimizes
	}

	fmt.Println(" optimizing..")
	uFinal, _ := glbopt.SCE(ncmplx, nsmpldim, rng, gen, true)

	a1, b1 = c.par2(uFinal)
	s.GW.A1, s.GW.B1 = a1, b1
	kge = objfunc.KGE(c.Obs, c.run())
	fmt.Printf("\n  a1: %.3e  b1: %.3f  KGE: %.3f\n", a1, b1, kge)
	return
}
