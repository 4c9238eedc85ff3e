// Command mchash-bench drives a single writer and a configurable number of
// concurrent reader goroutines against one *mchash.Map, then reports
// throughput and the observed max probe depth.
//
// Usage:
//
//	mchash-bench [options]
//
// Options:
//
//	-c, --capacity     Map max capacity (default: 100000)
//	-r, --readers      Number of concurrent reader goroutines (default: 8)
//	-d, --duration     How long to run (default: 3s)
//	-l, --load-factor  Slot array load factor (default: 0.5)
//	--h-max            Probe-depth ceiling (default: 50)
package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	flag "github.com/spf13/pflag"

	"github.com/db47h/mchash"
)

type options struct {
	capacity   int
	readers    int
	duration   time.Duration
	loadFactor float64
	hMax       int
}

func parseFlags() *options {
	o := &options{}
	flag.IntVarP(&o.capacity, "capacity", "c", 100_000, "map max capacity")
	flag.IntVarP(&o.readers, "readers", "r", 8, "number of concurrent reader goroutines")
	flag.DurationVarP(&o.duration, "duration", "d", 3*time.Second, "how long to run")
	flag.Float64VarP(&o.loadFactor, "load-factor", "l", 0.5, "slot array load factor")
	flag.IntVar(&o.hMax, "h-max", 50, "probe-depth ceiling")
	flag.Parse()
	return o
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(o *options) error {
	m, err := mchash.New[string, int64](o.capacity,
		mchash.WithLoadFactor[string, int64](o.loadFactor),
		mchash.WithHMax[string, int64](o.hMax),
	)
	if err != nil {
		return fmt.Errorf("constructing map: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), o.duration)
	defer cancel()

	var writes, reads, lookupHits atomic.Int64
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var n int64
		for {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			k := strconv.FormatInt(n%int64(o.capacity), 10)
			if _, _, err := m.Upsert(k, n); err != nil && err != mchash.ErrCapacityReached {
				return err
			}
			writes.Add(1)
			n++
		}
	})

	for range o.readers {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				default:
				}
				k := strconv.FormatInt(rand.Int64N(int64(o.capacity)), 10)
				if _, ok := m.Lookup(k); ok {
					lookupHits.Add(1)
				}
				reads.Add(1)
			}
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("duration:        %s\n", o.duration)
	fmt.Printf("capacity:        %d\n", o.capacity)
	fmt.Printf("final size:      %d\n", m.Size())
	fmt.Printf("max probe depth: %d\n", m.MaxProbeDepthInUse())
	fmt.Printf("writes:          %d (%.0f/s)\n", writes.Load(), float64(writes.Load())/o.duration.Seconds())
	fmt.Printf("reads:           %d (%.0f/s)\n", reads.Load(), float64(reads.Load())/o.duration.Seconds())
	fmt.Printf("lookup hits:     %d\n", lookupHits.Load())
	return nil
}
