package track

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

type fakeContent struct {
	visible  bool
	alpha    float64
	hides    int
	shows    int
	panicOn  string
	worldX   float64
	placings int
}

func (c *fakeContent) SetVisible(v bool) {
	if c.panicOn == "visible" {
		panic("boom")
	}
	c.visible = v
	if v {
		c.shows++
	} else {
		c.hides++
	}
}

func (c *fakeContent) Alpha() float64 { return c.alpha }

func (c *fakeContent) SetAlpha(a float64) {
	if c.panicOn == "alpha" {
		panic("boom")
	}
	c.alpha = a
}

func (c *fakeContent) SetWorldX(x float64) {
	c.worldX = x
	c.placings++
}

func quietScheduler() (*Scheduler, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewScheduler(log.New(&buf, "", 0)), &buf
}

func TestFadeInOutCompletes(t *testing.T) {
	s, _ := quietScheduler()
	c := &fakeContent{}

	if _, err := s.FadeIn("a", c, 0.5); err != nil {
		t.Fatalf("FadeIn: %v", err)
	}
	if !c.visible {
		t.Fatalf("content must be visible before interpolation starts")
	}
	for i := 0; i < 4; i++ {
		s.Step(0.125)
	}
	if !approx(c.alpha, 1, 1e-9) || s.Len() != 0 {
		t.Fatalf("expected completed fade-in, alpha=%v live=%d", c.alpha, s.Len())
	}

	if _, err := s.FadeOut("a", c, 0.25); err != nil {
		t.Fatalf("FadeOut: %v", err)
	}
	s.Step(0.125)
	if !c.visible {
		t.Fatalf("content hidden before fade-out completed")
	}
	s.Step(0.125)
	if c.visible || c.alpha != 0 || c.hides != 1 {
		t.Fatalf("expected hidden at alpha 0, visible=%v alpha=%v hides=%d", c.visible, c.alpha, c.hides)
	}
}

func TestFadeOutStartsFromCurrentAlpha(t *testing.T) {
	s, _ := quietScheduler()
	c := &fakeContent{}

	_, _ = s.FadeIn("a", c, 0.5)
	s.Step(0.1)
	s.Step(0.1)
	if !approx(c.alpha, 0.4, 1e-9) {
		t.Fatalf("alpha at 0.2s = %v, want 0.4", c.alpha)
	}

	_, _ = s.FadeOut("a", c, 1)
	f, ok := s.Live("a")
	if !ok {
		t.Fatalf("expected live fade-out")
	}
	if !approx(f.Start, 0.4, 1e-9) || f.Target != 0 {
		t.Fatalf("fade-out start=%v target=%v, want 0.4 -> 0", f.Start, f.Target)
	}
}

func TestFadeCancelledFadeOutNeverHides(t *testing.T) {
	s, _ := quietScheduler()
	c := &fakeContent{visible: true, alpha: 1}

	_, _ = s.FadeOut("a", c, 0.3)
	s.Step(0.1)
	_, _ = s.FadeIn("a", c, 0.3)
	for i := 0; i < 10; i++ {
		s.Step(0.1)
	}
	if c.hides != 0 || !c.visible {
		t.Fatalf("replaced fade-out hid the content (hides=%d)", c.hides)
	}
	if !approx(c.alpha, 1, 1e-9) {
		t.Fatalf("alpha=%v, want 1", c.alpha)
	}
}

func TestFadeAtMostOnePerKey(t *testing.T) {
	s, _ := quietScheduler()
	c := &fakeContent{}

	var last uint64
	for i := 0; i < 10; i++ {
		var err error
		if i%2 == 0 {
			last, err = s.FadeIn("a", c, 1)
		} else {
			last, err = s.FadeOut("a", c, 1)
		}
		if err != nil {
			t.Fatalf("trigger %d: %v", i, err)
		}
	}
	if s.Len() != 1 {
		t.Fatalf("expected one live fade, got %d", s.Len())
	}
	f, _ := s.Live("a")
	if f.Token != last || f.Target != 0 {
		t.Fatalf("live fade token=%d target=%v, want token=%d target=0", f.Token, f.Target, last)
	}
	for i := 0; i < 20; i++ {
		s.Step(0.1)
	}
	if c.alpha != 0 || c.visible {
		t.Fatalf("expected to settle on the last target, alpha=%v visible=%v", c.alpha, c.visible)
	}
}

func TestFadeZeroDurationCompletesOnFirstStep(t *testing.T) {
	s, _ := quietScheduler()
	c := &fakeContent{}
	_, _ = s.FadeIn("a", c, 0)
	f, _ := s.Live("a")
	if f.Duration != MinFadeSeconds {
		t.Fatalf("duration=%v, want floor %v", f.Duration, MinFadeSeconds)
	}
	s.Step(1.0 / 60)
	if c.alpha != 1 || s.Len() != 0 {
		t.Fatalf("expected instant fade, alpha=%v live=%d", c.alpha, s.Len())
	}
}

func TestFadeMissingContentIsLoggedNoop(t *testing.T) {
	s, buf := quietScheduler()
	if _, err := s.FadeIn("ghost", nil, 1); !errors.Is(err, ErrMissingContent) {
		t.Fatalf("expected ErrMissingContent, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("missing content must not start a fade")
	}
	if !strings.Contains(buf.String(), "key=ghost") {
		t.Fatalf("expected diagnostic, got %q", buf.String())
	}
}

func TestFadePanickingContentIsIsolated(t *testing.T) {
	s, buf := quietScheduler()
	bad := &fakeContent{panicOn: "alpha"}
	good := &fakeContent{}

	_, _ = s.FadeIn("bad", bad, 0.2)
	_, _ = s.FadeIn("good", good, 0.2)
	s.Step(0.1)
	s.Step(0.1)

	if !approx(good.alpha, 1, 1e-9) {
		t.Fatalf("healthy content did not progress, alpha=%v", good.alpha)
	}
	if _, ok := s.Live("bad"); ok {
		t.Fatalf("faulted fade should be dropped")
	}
	if !strings.Contains(buf.String(), "panicked") {
		t.Fatalf("expected panic diagnostic, got %q", buf.String())
	}
}

func TestFadeCancel(t *testing.T) {
	s, _ := quietScheduler()
	c := &fakeContent{visible: true, alpha: 1}
	_, _ = s.FadeOut("a", c, 0.1)
	if !s.Cancel("a") {
		t.Fatalf("expected cancel to report a live fade")
	}
	if s.Cancel("a") {
		t.Fatalf("second cancel should be a no-op")
	}
	s.Step(1)
	if c.hides != 0 || c.alpha != 1 {
		t.Fatalf("cancelled fade ran: hides=%d alpha=%v", c.hides, c.alpha)
	}
}

type hookContent struct {
	fakeContent
	onAlpha func()
}

func (c *hookContent) SetAlpha(a float64) {
	c.fakeContent.SetAlpha(a)
	if c.onAlpha != nil {
		c.onAlpha()
	}
}

func TestFadeStepSurvivesCancelFromSetAlpha(t *testing.T) {
	s, _ := quietScheduler()
	later := &fakeContent{}
	first := &hookContent{}
	first.onAlpha = func() { s.Cancel("b") }

	_, _ = s.FadeIn("a", first, 1)
	_, _ = s.FadeIn("b", later, 1)
	s.Step(0.5)

	if !approx(first.alpha, 0.5, 1e-9) {
		t.Fatalf("first fade did not step, alpha=%v", first.alpha)
	}
	if later.alpha != 0 {
		t.Fatalf("cancelled fade still applied alpha %v", later.alpha)
	}
	if _, ok := s.Live("b"); ok {
		t.Fatalf("cancelled fade is live again")
	}
}
