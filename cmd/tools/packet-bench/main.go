// Command packet-bench measures event packet construction throughput
// over synthetic streams. Everything stays in memory; the run times a
// validated pass and an unchecked pass over the same buffers and prints
// both rates plus a summary of the last packet built.
package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/banshee-data/evpacket/events"
	"github.com/banshee-data/evpacket/events/eventstest"
	"github.com/banshee-data/evpacket/internal/version"
	"github.com/google/uuid"
)

func main() {
	sensorName := flag.String("sensor", "DAVIS346", "sensor geometry preset")
	batch := flag.Int("batch", 100_000, "events per packet")
	packets := flag.Int("packets", 50, "packets to build")
	rate := flag.Float64("rate", 1e6, "mean events per second")
	seed := flag.Uint64("seed", 1, "rng seed (0 = wall clock)")
	debug := flag.Bool("debug", false, "log per-batch generator diagnostics")
	flag.Parse()

	runID := uuid.NewString()
	log.Printf("packet-bench %s (%s) run=%s", version.Version, version.GitSHA, runID)

	sensor, ok := events.SensorByName(*sensorName)
	if !ok {
		names := make([]string, 0, len(events.Sensors))
		for _, s := range events.Sensors {
			names = append(names, s.Name)
		}
		log.Fatalf("unknown sensor %q (known: %s)", *sensorName, strings.Join(names, ", "))
	}

	gen, err := eventstest.NewGenerator(eventstest.GeneratorConfig{
		Sensor: sensor,
		Rate:   *rate,
		Seed:   *seed,
		Debug:  *debug,
	})
	if err != nil {
		log.Fatalf("generator: %v", err)
	}

	// Synthesis is excluded from the timed region: buffers are built up
	// front so the passes measure construction alone.
	xs := make([][]uint16, *packets)
	ys := make([][]uint16, *packets)
	ts := make([][]int64, *packets)
	ps := make([][]int8, *packets)
	for i := range xs {
		xs[i], ys[i], ts[i], ps[i] = gen.Arrays(*batch)
	}
	log.Printf("synthesised %d packets of %d events on %s", *packets, *batch, sensor.Name)

	validated := sensor.Config()
	unchecked := sensor.Config()
	unchecked.SkipValidation = true

	last, vElapsed := timeBuild(xs, ys, ts, ps, validated)
	_, uElapsed := timeBuild(xs, ys, ts, ps, unchecked)

	total := *packets * *batch
	vRate := rateM(total, vElapsed)
	uRate := rateM(total, uElapsed)
	log.Printf("validated: %d packets (%d events) in %v: %.1f Mevents/s", *packets, total, vElapsed, vRate)
	log.Printf("unchecked: %d packets (%d events) in %v: %.1f Mevents/s", *packets, total, uElapsed, uRate)
	log.Printf("✓ validation overhead: %.2fx", float64(vElapsed)/float64(uElapsed))
	log.Printf("last packet: %v", last)
	log.Printf("stats: %v", events.Summarize(last))
}

// timeBuild constructs one packet per buffer set and returns the last
// packet plus the elapsed wall time.
func timeBuild(xs, ys [][]uint16, ts [][]int64, ps [][]int8, cfg events.PacketConfig) (events.Packet, time.Duration) {
	var last events.Packet
	start := time.Now()
	for i := range xs {
		pkt, err := events.FromArrays(xs[i], ys[i], ts[i], ps[i], cfg)
		if err != nil {
			log.Fatalf("packet %d: %v", i, err)
		}
		last = pkt
	}
	return last, time.Since(start)
}

// rateM converts an event count over a duration to Mevents/s.
func rateM(n int, d time.Duration) float64 {
	return float64(n) / d.Seconds() / 1e6
}
