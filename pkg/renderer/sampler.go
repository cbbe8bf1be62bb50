package renderer

import (
	"math"
	"math/rand"
	"sync"

	"github.com/alitto/pond/v2"

	"github.com/df07/go-raytracer-core/pkg/color"
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/framebuffer"
	"github.com/df07/go-raytracer-core/pkg/geometry"
	"github.com/df07/go-raytracer-core/pkg/scene"
)

// RenderSlot is a mutex-guarded publication point for a finished frame. A
// sampler publishes into it atomically; a display loop polls Take to see
// whether a new frame is ready.
type RenderSlot struct {
	mu    sync.Mutex
	ready bool
	frame *framebuffer.Framebuffer
}

// Publish stores frame and marks the slot ready.
func (s *RenderSlot) Publish(frame *framebuffer.Framebuffer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = true
	s.frame = frame
}

// Take returns the published frame and clears the ready flag, or ok=false
// if nothing new has been published since the last Take.
func (s *RenderSlot) Take() (frame *framebuffer.Framebuffer, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	s.ready = false
	return s.frame, true
}

// RenderFull runs the full-frame parallel sampler: it splits raysPerPixel
// across numWorkers goroutines (each worker gets raysPerPixel/numWorkers
// samples, but at least one; any remainder is dropped, not distributed),
// gamma-corrects each
// worker's per-pixel average, then reduces per-worker buffers with
// successive pairwise averages rather than a true arithmetic mean, so the
// final result is not the same as averaging all raysPerPixel samples
// directly when numWorkers > 2. The finished frame is published into slot.
func RenderFull(s *scene.Scene, raysPerPixel, depth, numWorkers int, logger core.Logger, slot *RenderSlot) {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	samplesPerWorker := raysPerPixel / numWorkers
	if samplesPerWorker <= 0 {
		samplesPerWorker = 1
	}

	objects := s.Objects.RelativeTo(s.Camera.Pos).CameraSorted(s.Camera.Pos)

	pool := pond.NewPool(numWorkers)
	defer pool.StopAndWait()

	var mu sync.Mutex
	var combined []color.Color
	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			output := renderWorker(s, objects, samplesPerWorker, depth, logger)

			mu.Lock()
			defer mu.Unlock()
			if combined == nil {
				combined = output
			} else {
				combined = pairwiseMean(combined, output)
			}
		})
	}
	wg.Wait()

	fb := framebuffer.New(s.Width, s.Height)
	if err := fb.SetBuffer(combined); err != nil {
		if logger != nil {
			logger.Warnf("render: %v", err)
		}
		return
	}
	slot.Publish(fb)
}

// renderWorker computes one worker's gamma-corrected, per-pixel average
// over samplesPerWorker rays. A worker that panics mid-render is contained
// here: it logs and returns a black buffer, contributing zero rather than
// crashing the whole render.
func renderWorker(s *scene.Scene, objects *geometry.ObjectList, samplesPerWorker, depth int, logger core.Logger) (out []color.Color) {
	defer func() {
		if r := recover(); r != nil {
			if logger != nil {
				logger.Warnf("render worker panicked: %v", r)
			}
			out = make([]color.Color, s.Width*s.Height)
		}
	}()

	random := rand.New(rand.NewSource(rand.Int63()))
	sizeMinus1X := math.Max(float64(s.Width-1), 1)
	sizeMinus1Y := math.Max(float64(s.Height-1), 1)

	buf := make([]color.Color, s.Width*s.Height)
	i := 0
	for y := 0; y < s.Height; y++ {
		py := float64(s.Height) - float64(y)
		if i%s.Width == 0 && y%8 == 0 && logger != nil {
			logger.Printf("render progress: %.1f%%", 100.0-(100.0/float64(s.Height))*py)
		}
		for x := 0; x < s.Width; x++ {
			px := float64(x)
			sum := core.Vec3{}
			for n := 0; n < samplesPerWorker; n++ {
				u := (px + random.Float64()) / sizeMinus1X
				v := (py + random.Float64()) / sizeMinus1Y
				ray := s.Camera.GetRay(u, v)
				c := RayColor(ray, objects, s.Background, depth, random)
				sum = sum.Add(c.Vec)
			}
			avg := sum.Multiply(1.0 / float64(samplesPerWorker))
			buf[i] = color.FromVec3(avg.GammaCorrect(2.0))
			i++
		}
	}
	return buf
}

// pairwiseMean combines two equal-length buffers by averaging each pixel
// pair. Folding buffers this way (rather than keeping a running sum and
// dividing by the worker count) is a faithful port: with more than two
// workers it does not produce the same result as a true arithmetic mean.
func pairwiseMean(a, b []color.Color) []color.Color {
	out := make([]color.Color, len(a))
	for i := range a {
		out[i] = color.FromVec3(a[i].Vec.Add(b[i].Vec).Multiply(0.5))
	}
	return out
}
