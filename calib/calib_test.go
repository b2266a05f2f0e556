package calib

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/dokzai/Stormwater-Management-Model/gwater"
)

// fixed-step stand-in for the external adaptive ODE solver
func rk4(x []float64, t0, t1, tol, hmax float64, f gwater.Derivs) error {
	const n = 200
	h := (t1 - t0) / n
	m := len(x)
	k1, k2, k3, k4, xt := make([]float64, m), make([]float64, m), make([]float64, m), make([]float64, m), make([]float64, m)
	for i := 0; i < n; i++ {
		t := t0 + float64(i)*h
		f(t, x, k1)
		for j := 0; j < m; j++ {
			xt[j] = x[j] + h/2.*k1[j]
		}
		f(t+h/2., xt, k2)
		for j := 0; j < m; j++ {
			xt[j] = x[j] + h/2.*k2[j]
		}
		f(t+h/2., xt, k3)
		for j := 0; j < m; j++ {
			xt[j] = x[j] + h*k3[j]
		}
		f(t+h, xt, k4)
		for j := 0; j < m; j++ {
			x[j] += h / 6. * (k1[j] + 2.*k2[j] + 2.*k3[j] + k4[j])
		}
	}
	return nil
}

type node struct{}

func (node) InvertElev() float64 { return 0. }
func (node) Depth() float64      { return 0. }
func (node) Inflow() float64     { return 0. }
func (node) Volume() float64     { return 0. }

func testConfig(nstep int) *Config {
	aq := &gwater.Aquifer{
		Name:           "A1",
		Porosity:       .4,
		WiltingPoint:   .15,
		FieldCapacity:  .3,
		Conductivity:   1e-6,
		BottomElev:     0.,
		WaterTableElev: 5.,
		UpperMoisture:  .2,
	}
	gw := gwater.NewGroundwater(aq, node{})
	gw.SurfElev = 10.
	s := &gwater.Subcatch{Name: "S1", Area: 1000., FracPerv: 1., GW: gw}
	m := gwater.New(rk4)
	m.Add(s)
	if err := s.Validate(); err != nil {
		panic(err)
	}
	s.InitState()

	return &Config{
		Mdl:   m,
		Sub:   "S1",
		Obs:   make([]float64, nstep),
		Tstep: 3600.,
		A1rng: [2]float64{1e-7, 1e-3},
		B1rng: [2]float64{0., 2.},
	}
}

func TestSampleRecovers(t *testing.T) {
	c := testConfig(48)

	// synthesize observations with known coefficients
	s := c.Mdl.Subcatch(c.Sub)
	s.GW.A1, s.GW.B1 = 1e-5, 1.
	copy(c.Obs, c.run())

	fp := filepath.Join(t.TempDir(), "smpl.csv")
	a1, b1, kge := Sample(c, 16, fp)

	if math.IsNaN(kge) || kge > 1. {
		t.Errorf("best KGE = %v", kge)
	}
	if a1 < c.A1rng[0] || a1 > c.A1rng[1] {
		t.Errorf("a1 = %v out of search range", a1)
	}
	if b1 < c.B1rng[0] || b1 > c.B1rng[1] {
		t.Errorf("b1 = %v out of search range", b1)
	}
}

func TestForcing(t *testing.T) {
	// annual course peaks near the summer solstice
	if SinEp(20) >= SinEp(172) {
		t.Error("winter Ep exceeds summer Ep")
	}
	for _, doy := range []int{1, 91, 182, 274, 365} {
		if SinEp(doy) < 0. {
			t.Errorf("negative Ep on day %d", doy)
		}
		if MakkinkEp(doy) < 0. {
			t.Errorf("negative Makkink Ep on day %d", doy)
		}
	}
}
