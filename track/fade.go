package track

import (
	"fmt"
	"log"
	"maps"
	"slices"

	"github.com/milk9111/trilho/common"
)

// MinFadeSeconds floors fade durations so interpolation never divides by
// zero. Shorter fades complete on their first step.
const MinFadeSeconds = 1e-4

// Content is the opaque handle a rendering layer exposes for one piece of
// zone content.
type Content interface {
	SetVisible(visible bool)
	Alpha() float64
	SetAlpha(alpha float64)
}

// Placeable content follows its zone's placement coordinate.
type Placeable interface {
	SetWorldX(x float64)
}

// Fade is a timed alpha interpolation for one content key.
type Fade struct {
	Key      string
	Start    float64
	Target   float64
	Duration float64
	Elapsed  float64
	// Token identifies this fade; a replaced fade's token is never live again.
	Token uint64

	content Content
}

func (f Fade) Alpha() float64 {
	return common.Lerp(f.Start, f.Target, common.Clamp01(f.Elapsed/f.Duration))
}

func (f Fade) Done() bool {
	return f.Elapsed >= f.Duration
}

// Scheduler runs at most one fade per content key. Starting a fade for a key
// replaces the previous one before returning. Fades advance only in Step, so
// the scheduler must be driven from the same loop that starts them.
type Scheduler struct {
	fades map[string]*Fade
	next  uint64
	log   *log.Logger
}

func NewScheduler(logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{fades: map[string]*Fade{}, log: logger}
}

// FadeIn makes the content visible, then interpolates from its current alpha
// to 1.
func (s *Scheduler) FadeIn(key string, c Content, seconds float64) (uint64, error) {
	if c == nil {
		return 0, s.missing(key, "fade in")
	}
	s.Cancel(key)
	if !s.guard(key, "set visible", func() { c.SetVisible(true) }) {
		return 0, fmt.Errorf("fade: key=%s: content rejected visibility", key)
	}
	return s.start(key, c, 1, seconds), nil
}

// FadeOut interpolates from the content's current alpha to 0 and hides it
// once the fade completes. A fade-out that is replaced never hides anything.
func (s *Scheduler) FadeOut(key string, c Content, seconds float64) (uint64, error) {
	if c == nil {
		return 0, s.missing(key, "fade out")
	}
	s.Cancel(key)
	return s.start(key, c, 0, seconds), nil
}

func (s *Scheduler) start(key string, c Content, target, seconds float64) uint64 {
	start := target
	if !s.guard(key, "read alpha", func() { start = c.Alpha() }) {
		start = 1 - target
	}
	if seconds < MinFadeSeconds {
		seconds = MinFadeSeconds
	}
	s.next++
	s.fades[key] = &Fade{
		Key:      key,
		Start:    start,
		Target:   target,
		Duration: seconds,
		Token:    s.next,
		content:  c,
	}
	return s.next
}

// Cancel drops the live fade for key without running its completion.
func (s *Scheduler) Cancel(key string) bool {
	if s == nil {
		return false
	}
	if _, ok := s.fades[key]; !ok {
		return false
	}
	delete(s.fades, key)
	return true
}

// Live returns a copy of the live fade for key.
func (s *Scheduler) Live(key string) (Fade, bool) {
	if s == nil {
		return Fade{}, false
	}
	f, ok := s.fades[key]
	if !ok {
		return Fade{}, false
	}
	return *f, true
}

func (s *Scheduler) Len() int {
	if s == nil {
		return 0
	}
	return len(s.fades)
}

// Step advances every live fade by dt seconds and applies the new alpha.
// Completed fade-outs hide their content.
func (s *Scheduler) Step(dt float64) {
	if s == nil || len(s.fades) == 0 {
		return
	}
	if dt < 0 || !finite(dt) {
		dt = 0
	}
	for _, key := range slices.Sorted(maps.Keys(s.fades)) {
		f, ok := s.fades[key]
		if !ok {
			// cancelled by an earlier key's SetAlpha
			continue
		}
		f.Elapsed += dt
		alpha := f.Alpha()
		if !s.guard(key, "set alpha", func() { f.content.SetAlpha(alpha) }) {
			s.dropIfLive(f)
			continue
		}
		if !f.Done() {
			continue
		}
		// SetAlpha may have started a newer fade for this key.
		if !s.dropIfLive(f) {
			continue
		}
		if f.Target == 0 {
			s.guard(key, "hide", func() { f.content.SetVisible(false) })
		}
	}
}

func (s *Scheduler) dropIfLive(f *Fade) bool {
	cur, ok := s.fades[f.Key]
	if !ok || cur.Token != f.Token {
		return false
	}
	delete(s.fades, f.Key)
	return true
}

func (s *Scheduler) missing(key, op string) error {
	s.log.Printf("fade: key=%s %s skipped: %v", key, op, ErrMissingContent)
	return fmt.Errorf("fade: key=%s: %w", key, ErrMissingContent)
}

// guard isolates a misbehaving content handle to its own key.
func (s *Scheduler) guard(key, op string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Printf("fade: key=%s %s panicked: %v", key, op, r)
			ok = false
		}
	}()
	fn()
	return true
}
