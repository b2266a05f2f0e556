package calib

import (
	"fmt"
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/mmio"
	"github.com/maseology/montecarlo/smpln"
	"github.com/maseology/objfunc"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// Sample runs an n-sample Latin hypercube sweep over (a1, b1), writes the
// ranked results to fp and returns the best pair with its KGE. The best pair
// is left on the linkage.
func Sample(c *Config, n int, fp string) (a1, b1, kge float64) {
	tt := mmio.NewTimer()
	defer tt.Lap("sweep complete")

	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	sp := smpln.NewLHC(rng, n, nsmpldim, false)

	uiprogress.Start()
	bar := uiprogress.AddBar(n).AppendCompleted().PrependElapsed()

	s := c.Mdl.Subcatch(c.Sub)
	u, f := make([][]float64, n), make([]float64, n)
	for k := 0; k < n; k++ {
		ut := make([]float64, nsmpldim)
		for j := 0; j < nsmpldim; j++ {
			ut[j] = sp.U[j][k]
		}
		s.GW.A1, s.GW.B1 = c.par2(ut)
		f[k] = objfunc.KGE(c.Obs, c.run())
		u[k] = ut
		bar.Incr()
	}
	uiprogress.Stop()

	r := make([]int, n)
	for i := range r {
		r[i] = i
	}
	sort.Slice(r, func(i, j int) bool { return f[r[i]] > f[r[j]] })

	t, err := mmio.NewTXTwriter(fp)
	if err != nil {
		log.Fatalf("calib.Sample %s save error: %v", fp, err)
	}
	defer t.Close()
	t.WriteLine(fmt.Sprintf("rank(of %d),kge,a1,b1", n))
	for i, k := range r {
		p0, p1 := c.par2(u[k])
		t.WriteLine(fmt.Sprintf("%d,%f,%e,%f", i+1, f[k], p0, p1))
	}

	a1, b1 = c.par2(u[r[0]])
	kge = f[r[0]]
	s.GW.A1, s.GW.B1 = a1, b1
	return
}
