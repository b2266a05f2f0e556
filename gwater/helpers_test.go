package gwater

import (
	"fmt"
	"strconv"
	"strings"
)

// rk4 is a fixed-step integrator standing in for the external adaptive
// solver; 1000 substeps is ample for the smooth systems exercised here.
func rk4(x []float64, t0, t1, tol, hmax float64, f Derivs) error {
	const n = 1000
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

type stubNode struct{ invert, depth, inflow, volume float64 }

func (n *stubNode) InvertElev() float64 { return n.invert }
func (n *stubNode) Depth() float64      { return n.depth }
func (n *stubNode) Inflow() float64     { return n.inflow }
func (n *stubNode) Volume() float64     { return n.volume }

type constExpr float64

func (c constExpr) Eval(func(v Variable) float64) float64 { return float64(c) }

type varExpr Variable

func (e varExpr) Eval(val func(v Variable) float64) float64 { return val(Variable(e)) }

type diffExpr struct{ a, b Expr }

func (e diffExpr) Eval(val func(v Variable) float64) float64 { return e.a.Eval(val) - e.b.Eval(val) }

// testParser handles a lone term or the difference of two terms, where a term
// is a number or a variable name.
type testParser struct{}

func (testParser) Parse(text string, resolve func(name string) (Variable, bool)) (Expr, error) {
	term := func(tok string) (Expr, error) {
		tok = strings.TrimSpace(tok)
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			return constExpr(f), nil
		}
		v, ok := resolve(tok)
		if !ok {
			return nil, fmt.Errorf("undefined variable %q", tok)
		}
		return varExpr(v), nil
	}
	if a, b, found := strings.Cut(text, " - "); found {
		ea, err := term(a)
		if err != nil {
			return nil, err
		}
		eb, err := term(b)
		if err != nil {
			return nil, err
		}
		return diffExpr{ea, eb}, nil
	}
	return term(text)
}

type mbRecorder struct{ infil, upperEvap, lowerEvap, deepLoss, netLateral float64 }

func (r *mbRecorder) AddGwaterTotals(vi, vue, vle, vdl, vlat float64) {
	r.infil += vi
	r.upperEvap += vue
	r.lowerEvap += vle
	r.deepLoss += vdl
	r.netLateral += vlat
}

type statRecorder struct {
	sub            string
	latFlow, theta float64
	n              int
}

func (r *statRecorder) UpdateGwaterStats(sub string, infil, evapLoss, latFlow, deepLoss, theta, wtElev, tstep float64) {
	r.sub = sub
	r.latFlow = latFlow
	r.theta = theta
	r.n++
}

// testAquifer returns the reference aquifer used throughout: a 10 ft deep
// silty sand with the water table initially at mid-depth.
func testAquifer() *Aquifer {
	return &Aquifer{
		Name:           "A1",
		Porosity:       .4,
		WiltingPoint:   .15,
		FieldCapacity:  .3,
		Conductivity:   1e-6,
		BottomElev:     0.,
		WaterTableElev: 5.,
		UpperMoisture:  .2,
	}
}

// testSubcatch builds a one-subcatchment model around aquifer a and node nd.
func testSubcatch(a *Aquifer, nd Node) (*Model, *Subcatch) {
	gw := NewGroundwater(a, nd)
	gw.SurfElev = 10.
	s := &Subcatch{Name: "S1", Area: 1000., FracPerv: 1., GW: gw}
	m := New(rk4)
	m.Parser = testParser{}
	m.Add(s)
	if err := s.Validate(); err != nil {
		panic(err)
	}
	s.InitState()
	return m, s
}
