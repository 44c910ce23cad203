package demo

import (
	"math"

	"github.com/san-kum/animchart/internal/sim"
)

// VanDerPol implements the Van der Pol oscillator.
// State: [x, y] where y = dx/dt
//
//	dx/dt = y
//	dy/dt = μ(1 - x²)y - x
type VanDerPol struct {
	Mu float64
}

func (v VanDerPol) StateDim() int { return 2 }

func (v VanDerPol) Derive(s sim.State, _ float64) sim.State {
	x, y := s[0], s[1]
	return sim.State{y, v.Mu*(1-x*x)*y - x}
}

// Pendulum is a damped simple pendulum. State: [theta, omega].
type Pendulum struct {
	G, L, Damping float64
}

func (p Pendulum) StateDim() int { return 2 }

func (p Pendulum) Derive(s sim.State, _ float64) sim.State {
	theta, omega := s[0], s[1]
	return sim.State{omega, -(p.G/p.L)*math.Sin(theta) - p.Damping*omega}
}

// Lorenz is the Lorenz attractor. State: [x, y, z].
type Lorenz struct {
	Sigma, Rho, Beta float64
}

func (l Lorenz) StateDim() int { return 3 }

func (l Lorenz) Derive(s sim.State, _ float64) sim.State {
	x, y, z := s[0], s[1], s[2]
	return sim.State{
		l.Sigma * (y - x),
		x*(l.Rho-z) - y,
		x*y - l.Beta*z,
	}
}

// Duffing is a periodically forced Duffing oscillator. State: [x, v].
//
//	x'' + δx' + αx + βx³ = γcos(ωt)
type Duffing struct {
	Delta, Alpha, Beta, Gamma, Omega float64
}

func (d Duffing) StateDim() int { return 2 }

func (d Duffing) Derive(s sim.State, t float64) sim.State {
	x, v := s[0], s[1]
	return sim.State{v, d.Gamma*math.Cos(d.Omega*t) - d.Delta*v - d.Alpha*x - d.Beta*x*x*x}
}

// SpringMass is a damped spring. State: [pos, vel].
type SpringMass struct {
	K, M, C float64
}

func (s SpringMass) StateDim() int { return 2 }

func (s SpringMass) Derive(x sim.State, _ float64) sim.State {
	pos, vel := x[0], x[1]
	return sim.State{vel, (-s.K*pos - s.C*vel) / s.M}
}
