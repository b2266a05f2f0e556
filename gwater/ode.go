package gwater

// Derivs computes dxdt at time t and state x.
type Derivs func(t float64, x, dxdt []float64)

// Integrator advances state x from t0 to t1 within tolerance tol, taking
// internal steps no larger than hmax. The solver is external to this package;
// any step-halving on tolerance failure is its own affair.
type Integrator func(x []float64, t0, t1, tol, hmax float64, f Derivs) error
