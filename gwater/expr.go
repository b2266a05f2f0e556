package gwater

import "fmt"

// Expr is a parsed user flow equation. Evaluation pulls live variable values
// through the supplied resolver; the expression machinery itself is external
// to this package.
type Expr interface {
	Eval(value func(v Variable) float64) float64
}

// Parser builds an Expr from equation text, resolving variable names through
// resolve. A name that fails to resolve must yield a parse error.
type Parser interface {
	Parse(text string, resolve func(name string) (Variable, bool)) (Expr, error)
}

// FlowEq selects which built-in flow term a user equation attaches to.
type FlowEq int

const (
	LateralFlowEq FlowEq = iota // added to the built-in three-term lateral law
	DeepFlowEq                  // replaces the built-in deep seepage term
)

// BindFlowEq parses equation text and binds it to subcatchment name,
// discarding any previously bound equation of the same kind. Malformed text
// and unknown variable names are hard input errors.
func (m *Model) BindFlowEq(name string, k FlowEq, text string) error {
	s, ok := m.subs[name]
	if !ok {
		return fmt.Errorf("gwater: unknown subcatchment %q", name)
	}
	if s.GW == nil {
		return fmt.Errorf("gwater: subcatchment %q has no groundwater linkage", name)
	}
	if m.Parser == nil {
		return fmt.Errorf("gwater: no flow-equation parser configured")
	}
	expr, err := m.Parser.Parse(text, VariableFromName)
	if err != nil {
		return fmt.Errorf("gwater: invalid groundwater flow equation for %q: %v", name, err)
	}
	switch k {
	case LateralFlowEq:
		s.GW.latFlowExpr = expr
	case DeepFlowEq:
		s.GW.deepFlowExpr = expr
	default:
		return fmt.Errorf("gwater: unknown flow-equation kind %d", k)
	}
	return nil
}

// ClearFlowEqs removes any user flow equations bound to subcatchment name.
func (m *Model) ClearFlowEqs(name string) {
	if s, ok := m.subs[name]; ok && s.GW != nil {
		s.GW.latFlowExpr = nil
		s.GW.deepFlowExpr = nil
	}
}
