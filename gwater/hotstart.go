package gwater

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
)

// SaveState writes the physical groundwater state of every registered
// subcatchment to fp for a later warm restart. Subcatchments without a
// groundwater linkage are skipped.
func (m *Model) SaveState(fp string) error {
	t, err := mmio.NewTXTwriter(fp)
	if err != nil {
		return fmt.Errorf("gwater.SaveState %s: %v", fp, err)
	}
	defer t.Close()
	t.WriteLine("subcatchment,theta,waterTableElev,latFlow,maxInfilVol")
	for _, s := range m.subs {
		if s.GW == nil {
			continue
		}
		th, wt, q, v := s.GW.State()
		t.WriteLine(fmt.Sprintf("%s,%.12e,%.12e,%.12e,%.12e", s.Name, th, wt, q, v))
	}
	return nil
}

// LoadState restores a state file written by SaveState. Records naming
// unknown subcatchments are an input error.
func (m *Model) LoadState(fp string) error {
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return fmt.Errorf("gwater.LoadState %s: %v", fp, err)
	}
	if len(lns) == 0 {
		return fmt.Errorf("gwater.LoadState %s: empty state file", fp)
	}
	for _, ln := range lns[1:] {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		a := strings.Split(ln, ",")
		if len(a) != 5 {
			return fmt.Errorf("gwater.LoadState %s: malformed record %q", fp, ln)
		}
		s, ok := m.subs[a[0]]
		if !ok {
			return fmt.Errorf("gwater.LoadState %s: unknown subcatchment %q", fp, a[0])
		}
		if s.GW == nil {
			continue
		}
		x := make([]float64, 4)
		for i, f := range a[1:] {
			if x[i], err = strconv.ParseFloat(strings.TrimSpace(f), 64); err != nil {
				return fmt.Errorf("gwater.LoadState %s: %v", fp, err)
			}
		}
		s.GW.SetState(x[0], x[1], x[2], x[3])
	}
	return nil
}
