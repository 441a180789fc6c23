package batch

import (
	"sync"
	"sync/atomic"
	"time"

	"dae-track-converter/internal/anim"
	"dae-track-converter/internal/diag"
	"dae-track-converter/internal/trackfile"
)

// Config holds the shared settings of a batch run.
type Config struct {
	Workers int
	// Progress is the interval between progress records. Zero means 2s.
	Progress time.Duration
}

// Result holds the outcome of converting one animation.
type Result struct {
	Animation string
	Track     *anim.Track
	Stage     anim.Stage
	Samples   int
	Duration  float32
	Skipped   bool
	Success   bool
	Error     string
	Code      diag.Code
}

// Run converts all animations against bones using a worker pool. Results
// are in the order of anims.
func Run(cfg Config, bones anim.BoneIndex, anims []*anim.Animation) []Result {
	total := len(anims)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	interval := cfg.Progress
	if interval <= 0 {
		interval = 2 * time.Second
	}

	start := time.Now()
	log := diag.Logger()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					log.Info("progress", "done", p, "total", total, "per_sec", rate)
				}
			}
		}
	}()

	// Worker pool
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = convertOne(bones, anims[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range anims {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

func convertOne(bones anim.BoneIndex, a *anim.Animation) Result {
	res, err := anim.Convert(a, bones)
	if err != nil {
		code := diag.Classify(err)
		diag.Logger().Warn("animation failed", "animation", a.ID, "code", code, "err", err)
		return Result{
			Animation: a.ID,
			Stage:     res.Stage,
			Error:     err.Error(),
			Code:      code,
		}
	}
	return Result{
		Animation: a.ID,
		Track:     res.Track,
		Stage:     res.Stage,
		Samples:   res.Samples,
		Duration:  res.Duration,
		Skipped:   res.Stage == anim.StageEmptyAnimation,
		Success:   true,
	}
}

// Group collects the produced tracks into one track group in animation
// order. Duration is the longest converted animation.
func Group(name string, results []Result, timeStep float32) *trackfile.Group {
	g := &trackfile.Group{
		Name:         name,
		TimeStep:     timeStep,
		Oversampling: 1,
		Tracks:       []trackfile.Track{},
	}
	for _, r := range results {
		if r.Track == nil {
			continue
		}
		g.Tracks = append(g.Tracks, trackfile.FromTrack(r.Track))
		g.Duration = max(g.Duration, r.Duration)
	}
	return g
}
