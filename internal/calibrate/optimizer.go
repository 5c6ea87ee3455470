package calibrate

import (
	"math"

	"github.com/seqgrove/calibration-core/internal/simulator"
	"github.com/seqgrove/calibration-core/pkg/utils"
)

// Optimizer is the black-box minimizer driving the calibration loop. It
// proposes parameter points and receives only scalar feedback; the loop
// treats it as opaque.
type Optimizer interface {
	// Ask returns the next candidate point to evaluate.
	Ask() simulator.Parameters
	// Tell reports the observed objective value for a previously asked point.
	Tell(p simulator.Parameters, value float64)
}

// RandomSearch is the built-in optimizer: uniform sampling over the
// search space, mixed with local perturbations around the best point
// reported so far. It is deterministic for a fixed seed.
type RandomSearch struct {
	space    SearchSpace
	rng      *utils.RandSource
	stepSize float64

	asked     int
	bestValue float64
	bestPoint simulator.Parameters
	hasBest   bool
}

// NewRandomSearch creates a seeded random-search optimizer over space.
// stepSize scales the local perturbation relative to each bound's width;
// values outside (0, 1] fall back to 0.2.
func NewRandomSearch(space SearchSpace, seed int64, stepSize float64) *RandomSearch {
	if stepSize <= 0 || stepSize > 1 {
		stepSize = 0.2
	}
	return &RandomSearch{
		space:     space,
		rng:       utils.NewRandSource(seed),
		stepSize:  stepSize,
		bestValue: math.Inf(1),
	}
}

func (o *RandomSearch) Ask() simulator.Parameters {
	o.asked++
	// Every other proposal exploits the incumbent once one exists.
	if o.hasBest && o.asked%2 == 0 {
		return o.perturb(o.bestPoint)
	}
	return o.sample()
}

func (o *RandomSearch) Tell(p simulator.Parameters, value float64) {
	if value < o.bestValue {
		o.bestValue = value
		o.bestPoint = p
		o.hasBest = true
	}
}

// Best returns the best told point and value so far.
func (o *RandomSearch) Best() (simulator.Parameters, float64, bool) {
	return o.bestPoint, o.bestValue, o.hasBest
}

func (o *RandomSearch) sample() simulator.Parameters {
	s := o.space
	return simulator.Parameters{
		RootLength:     s.RootLength.Min + o.rng.Intn(s.RootLength.Max-s.RootLength.Min+1),
		InsertionRate:  o.rng.UniformFloat64(s.InsertionRate.Min, s.InsertionRate.Max),
		DeletionRate:   o.rng.UniformFloat64(s.DeletionRate.Min, s.DeletionRate.Max),
		InsertionAlpha: o.rng.UniformFloat64(s.InsertionAlpha.Min, s.InsertionAlpha.Max),
		DeletionAlpha:  o.rng.UniformFloat64(s.DeletionAlpha.Min, s.DeletionAlpha.Max),
	}
}

func (o *RandomSearch) perturb(p simulator.Parameters) simulator.Parameters {
	s := o.space
	jitter := func(v float64, r Range) float64 {
		width := (r.Max - r.Min) * o.stepSize
		return v + o.rng.UniformFloat64(-width, width)
	}
	lenWidth := float64(s.RootLength.Max-s.RootLength.Min) * o.stepSize
	next := simulator.Parameters{
		RootLength:     p.RootLength + int(o.rng.UniformFloat64(-lenWidth, lenWidth)),
		InsertionRate:  jitter(p.InsertionRate, s.InsertionRate),
		DeletionRate:   jitter(p.DeletionRate, s.DeletionRate),
		InsertionAlpha: jitter(p.InsertionAlpha, s.InsertionAlpha),
		DeletionAlpha:  jitter(p.DeletionAlpha, s.DeletionAlpha),
	}
	return o.space.Clamp(next)
}
