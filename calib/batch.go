package calib

import (
	"context"
	"log/slog"
	"sync"

	"github.com/cwbudde/zeroflux/core"
	"github.com/cwbudde/zeroflux/stats/frame"
)

// Batch calibrates science frames against a fixed master flat and bias.
// A Batch is safe for concurrent use; master frames are only read.
type Batch struct {
	flat *core.Array
	bias *core.Array
	cfg  Config
	log  *slog.Logger
}

// Result is the outcome of calibrating one frame of a batch.
type Result struct {
	Index  int
	Name   string
	Pixels *core.Array
	Stats  frame.Stats
	Err    error
}

// NewBatch validates the master frames once and returns a Batch using
// them.
func NewBatch(flat, bias *core.Array, opts ...Option) (*Batch, error) {
	cfg, err := ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}

	if err := check2D(bias); err != nil {
		return nil, err
	}

	if err := core.CheckShapes(flat, bias); err != nil {
		return nil, err
	}

	st, err := CheckFlat(flat)
	if err != nil {
		return nil, err
	}

	log := cfg.Logger
	log.Debug("master flat", "stats", st)

	if IsFlatDegenerate(st) {
		log.Warn("master flat is uniform", "mean", st.Mean, "stddev", st.StdDev)
	}

	return &Batch{flat: flat, bias: bias, cfg: cfg, log: log}, nil
}

// Run calibrates frames with at most Parallelism frames in flight and
// returns one Result per frame, in input order. A failing frame does not
// stop the others. Once ctx is done, frames not yet started get ctx.Err().
func (b *Batch) Run(ctx context.Context, frames []Frame) []Result {
	results := make([]Result, len(frames))
	sem := make(chan struct{}, b.cfg.Parallelism)

	var wg sync.WaitGroup

	for i, f := range frames {
		results[i].Index = i
		results[i].Name = f.Name

		select {
		case <-ctx.Done():
			results[i].Err = ctx.Err()
			continue
		case sem <- struct{}{}:
		}

		wg.Add(1)

		go func() {
			defer func() {
				<-sem
				wg.Done()
			}()

			results[i] = b.calibrate(ctx, i, f)
		}()
	}

	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	b.log.Info("batch done", "frames", len(frames), "failed", failed)

	return results
}

func (b *Batch) calibrate(ctx context.Context, i int, f Frame) Result {
	r := Result{Index: i, Name: f.Name}

	if err := ctx.Err(); err != nil {
		r.Err = err
		return r
	}

	px, err := CalibrateScience(f, b.flat, b.bias, WithExposureScaling(b.cfg.ScaleByExposure))
	if err != nil {
		b.log.Warn("skipping frame", "index", i, "frame", f.String(), "err", err)
		r.Err = err

		return r
	}

	r.Pixels = px
	r.Stats = frame.Calculate(px.Data())

	b.log.Info("calibrated frame", "index", i, "frame", f.String(),
		"mean", r.Stats.Mean, "stddev", r.Stats.StdDev)

	return r
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var out []Result

	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}

	return out
}
