// Package minimise implements deterministic unconstrained minimization:
// 1-D bracketing and Brent's method (with and without derivative
// information), N-D line search, Powell's derivative-free direction-set
// method, and Fletcher–Reeves–Polak–Ribière conjugate gradient.
//
// All routines are synchronous and allocation-light. In-place mutation is
// confined to *algebra.MutVector parameters and is called out on each
// function; everything else takes and returns immutable values.
//
// Routines never retry internally. When bracketing or convergence heuristics
// cannot certify a minimum within bounded effort they fail with
// ErrPoorlyConditioned, distinguishing "no answer obtainable" from a silently
// wrong answer; restarting from a different initial point is the caller's
// decision.
package minimise
