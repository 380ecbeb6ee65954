package events

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Stats summarises a packet for logs and rate tuning. Every field is
// derived from packet contents; computing one walks the packet and
// allocates a scratch buffer for the interval statistics, so it belongs
// on diagnostic paths, not in per-packet hot loops.
type Stats struct {
	Count    int   // events in the packet
	Duration int64 // t1 - t0, microseconds
	Positive int   // events with polarity +1
	Negative int   // events with polarity -1

	// EventsPerSecond is Count over the packet duration, zero when the
	// duration is zero.
	EventsPerSecond float64

	// MeanIntervalMicros and StddevIntervalMicros describe the gaps
	// between consecutive timestamps. Mean needs at least two events,
	// stddev at least three; below that they are zero.
	MeanIntervalMicros   float64
	StddevIntervalMicros float64
}

// Summarize computes diagnostic statistics for pkt.
func Summarize(pkt Packet) Stats {
	v := pkt.Arrays()
	s := Stats{
		Count:    pkt.Count(),
		Duration: pkt.Duration(),
	}

	pq := v.P()
	for i := 0; i < pq.Len(); i++ {
		if pq.At(i) > 0 {
			s.Positive++
		} else {
			s.Negative++
		}
	}

	if s.Duration > 0 {
		s.EventsPerSecond = float64(s.Count) / (float64(s.Duration) / 1e6)
	}

	if s.Count >= 2 {
		tq := v.T()
		gaps := make([]float64, s.Count-1)
		for i := 1; i < tq.Len(); i++ {
			gaps[i-1] = float64(tq.At(i) - tq.At(i-1))
		}
		s.MeanIntervalMicros = stat.Mean(gaps, nil)
		if len(gaps) >= 2 {
			s.StddevIntervalMicros = stat.StdDev(gaps, nil)
		}
	}

	return s
}

// String renders the stats as a single log-friendly line.
func (s Stats) String() string {
	return fmt.Sprintf("events=%d duration=%dµs rate=%.0f/s +%d/-%d interval=%.1f±%.1fµs",
		s.Count, s.Duration, s.EventsPerSecond, s.Positive, s.Negative,
		s.MeanIntervalMicros, s.StddevIntervalMicros)
}
