package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"toonscroll/internal/postprocess"
)

// Config holds the shared settings of an encoding run.
type Config struct {
	OutputDir   string
	Supersample int // frames are rendered this many times larger than output
	Workers     int
}

// Frame is one rendered frame waiting to be encoded.
type Frame struct {
	Index   int
	Time    float64
	Section int
	ScrollY float64
	Image   *image.NRGBA
}

// Result holds the outcome of encoding one frame.
type Result struct {
	Index   int
	Time    float64
	Section int
	ScrollY float64
	Image   string // file name relative to OutputDir
	Success bool
	Error   string
}

// FrameName returns the output file name of frame i.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%05d.webp", i)
}

// Run encodes frames from the channel with a worker pool until it is closed.
// total sizes the result slice and the progress output; frames with an index
// outside [0, total) are dropped with a failed result appended at the end.
func Run(cfg Config, frames <-chan Frame, total int) []Result {
	results := make([]Result, total)
	var (
		processed atomic.Int64
		extraMu   sync.Mutex
		extra     []Result
	)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		for f := range frames {
			r := failed(f, err.Error())
			if f.Index >= 0 && f.Index < total {
				results[f.Index] = r
			}
		}
		return results
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	workers := max(cfg.Workers, 1)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range frames {
				if f.Index < 0 || f.Index >= total {
					extraMu.Lock()
					extra = append(extra, failed(f, fmt.Sprintf("frame index %d out of range", f.Index)))
					extraMu.Unlock()
					continue
				}
				results[f.Index] = processFrame(cfg, f)
				processed.Add(1)
			}
		}()
	}

	wg.Wait()
	close(done)

	return append(results, extra...)
}

func failed(f Frame, msg string) Result {
	return Result{Index: f.Index, Time: f.Time, Section: f.Section, ScrollY: f.ScrollY, Error: msg}
}

func processFrame(cfg Config, f Frame) Result {
	if f.Image == nil {
		return failed(f, "no image")
	}

	// Post-processing: supersample downsample
	img := f.Image
	if ss := cfg.Supersample; ss > 1 {
		b := img.Bounds()
		img = postprocess.Downsample(img, max(b.Dx()/ss, 1), max(b.Dy()/ss, 1))
	}

	name := FrameName(f.Index)
	outPath := filepath.Join(cfg.OutputDir, name)
	out, err := os.Create(outPath)
	if err != nil {
		return failed(f, err.Error())
	}
	defer out.Close()

	if err := nativewebp.Encode(out, img, nil); err != nil {
		return failed(f, fmt.Sprintf("WebP encode: %v", err))
	}

	r := failed(f, "")
	r.Image = name
	r.Success = true
	return r
}
