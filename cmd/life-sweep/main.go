package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"conway-life/internal/life"
	"conway-life/internal/sweep"
)

func main() {
	runs := flag.Int("runs", 64, "number of seeds to simulate")
	first := flag.Int64("seed", 1, "first seed")
	steps := flag.Int("steps", 5000, "generation limit per seed")
	density := flag.Float64("density", life.DefaultDensity, "randomize density")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	opts := sweep.Options{
		Layout:    life.DefaultLayout(),
		Density:   *density,
		FirstSeed: *first,
		Runs:      *runs,
		MaxSteps:  *steps,
		Workers:   *workers,
	}

	fmt.Printf("Sweeping %d seeds from %d (%d workers, %d steps, density %.2f)\n", *runs, *first, *workers, *steps, *density)

	start := time.Now()
	results, err := sweep.Run(context.Background(), opts)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	settled := 0
	totalAt := 0
	longest := sweep.Result{}
	for _, res := range results {
		status := "running"
		if res.Settled {
			status = fmt.Sprintf("settled at %d, period %d", res.SettledAt, res.Period)
			settled++
			totalAt += res.SettledAt
			if res.SettledAt > longest.SettledAt {
				longest = res
			}
		}
		fmt.Printf("seed=%d pop=%d peak=%d %s\n", res.Seed, res.Population, res.PeakPopulation, status)
	}

	fmt.Printf("\n%d/%d settled (elapsed %s)\n", settled, len(results), elapsed.Round(time.Millisecond))
	if settled > 0 {
		fmt.Printf("Mean settle generation %.1f, longest seed=%d at %d\n", float64(totalAt)/float64(settled), longest.Seed, longest.SettledAt)
	}
}
