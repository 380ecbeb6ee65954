// Package eventstest generates synthetic event streams for tests,
// benchmarks, and demos.
//
// Streams are in-memory only. The generator fills fresh buffers that
// satisfy every packet construction invariant, with Poisson-process
// timing (exponential inter-arrival gaps) so synthetic load resembles a
// real sensor rather than a uniform ramp.
package eventstest

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/banshee-data/evpacket/events"
	"gonum.org/v1/gonum/stat/distuv"
)

// GeneratorConfig configures a Generator. The zero value of a field
// selects its default.
type GeneratorConfig struct {
	// Sensor is the geometry events are drawn on (default
	// events.DAVIS346).
	Sensor events.Sensor

	// Rate is the mean event rate in events per second (default 1e6).
	Rate float64

	// Seed seeds the random source; 0 seeds from the wall clock, which
	// is logged so a run can still be reproduced.
	Seed uint64

	// StartMicros is the timestamp origin in microseconds; the first
	// event lands at or after it.
	StartMicros int64

	// PolarityBias is the probability of a +1 polarity (default 0.5).
	PolarityBias float64

	// Debug routes a per-batch summary through events.Logf.
	Debug bool
}

// Validate checks the configuration values are usable.
func (c GeneratorConfig) Validate() error {
	if c.Rate < 0 {
		return fmt.Errorf("rate must be non-negative, got %f", c.Rate)
	}
	if c.PolarityBias < 0 || c.PolarityBias > 1 {
		return fmt.Errorf("polarity_bias must be between 0 and 1, got %f", c.PolarityBias)
	}
	if c.Sensor != (events.Sensor{}) && (c.Sensor.Width < 1 || c.Sensor.Height < 1) {
		return fmt.Errorf("sensor geometry must be positive, got %dx%d", c.Sensor.Width, c.Sensor.Height)
	}
	// Coordinates are uint16; a plane wider than 1<<16 would truncate.
	if c.Sensor.Width > 1<<16 || c.Sensor.Height > 1<<16 {
		return fmt.Errorf("sensor geometry must fit 16-bit coordinates, got %dx%d", c.Sensor.Width, c.Sensor.Height)
	}
	return nil
}

// Generator produces synthetic event batches. Consecutive batches are
// contiguous in time: the generator keeps a timestamp cursor that only
// moves forward. Not safe for concurrent use; create one per goroutine.
type Generator struct {
	cfg    GeneratorConfig
	rng    *rand.Rand
	gaps   distuv.Exponential
	cursor int64
	frac   float64 // sub-microsecond remainder carried between gaps
}

// NewGenerator creates a generator, applying defaults for zero config
// fields and validating the result.
func NewGenerator(cfg GeneratorConfig) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	if cfg.Sensor == (events.Sensor{}) {
		cfg.Sensor = events.DAVIS346
	}
	if cfg.Rate == 0 {
		cfg.Rate = 1e6
	}
	if cfg.PolarityBias == 0 {
		cfg.PolarityBias = 0.5
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		if cfg.Debug {
			events.Logf("[eventstest] seeding from wall clock: seed=%d", seed)
		}
	}
	src := rand.NewPCG(seed, seed)

	return &Generator{
		cfg: cfg,
		rng: rand.New(src),
		// Rate is per second; gaps are drawn in microseconds.
		gaps:   distuv.Exponential{Rate: cfg.Rate / 1e6, Src: src},
		cursor: cfg.StartMicros,
	}, nil
}

// Config returns the effective configuration after defaulting.
func (g *Generator) Config() GeneratorConfig { return g.cfg }

// Arrays fills four fresh parallel buffers with n synthetic events:
// uniform pixel positions, Poisson-process timestamps, and polarities
// drawn with the configured bias. The buffers satisfy every packet
// construction invariant.
func (g *Generator) Arrays(n int) (x []uint16, y []uint16, t []int64, p []int8) {
	x = make([]uint16, n)
	y = make([]uint16, n)
	t = make([]int64, n)
	p = make([]int8, n)

	for i := 0; i < n; i++ {
		x[i] = uint16(g.rng.IntN(g.cfg.Sensor.Width))
		y[i] = uint16(g.rng.IntN(g.cfg.Sensor.Height))
		// Gaps are drawn in fractional microseconds; the remainder
		// below one microsecond carries into the next gap so the
		// realized rate tracks cfg.Rate.
		g.frac += g.gaps.Rand()
		step := int64(g.frac)
		g.frac -= float64(step)
		g.cursor += step
		t[i] = g.cursor
		if g.rng.Float64() < g.cfg.PolarityBias {
			p[i] = 1
		} else {
			p[i] = -1
		}
	}

	if g.cfg.Debug && n > 0 {
		events.Logf("[eventstest] generated %d events in [%d, %d]µs on %s",
			n, t[0], t[n-1], g.cfg.Sensor.Name)
	}
	return x, y, t, p
}

// Packet builds a validated read-only packet over a fresh batch of n
// events. Generated batches satisfy every construction invariant, so a
// validation failure here is a generator bug and panics.
func (g *Generator) Packet(n int) events.Packet {
	x, y, t, p := g.Arrays(n)
	pkt, err := events.FromArrays(x, y, t, p, g.cfg.Sensor.Config())
	if err != nil {
		panic(fmt.Sprintf("eventstest: generated batch failed validation: %v", err))
	}
	return pkt
}
