package system

import (
	"log"

	"github.com/milk9111/trilho/ecs"
	"github.com/milk9111/trilho/ecs/component"
	"github.com/milk9111/trilho/track"
)

// FadeSystem drives one fade per content key. A key is shown while any zone
// using it is active; fades start only when that aggregate flips, so zones
// sharing content never fight over it. Live fades then advance by the clock
// step.
type FadeSystem struct {
	fades *track.Scheduler
	log   *log.Logger
	// shown is the last target started per key.
	shown map[string]bool
}

// keyTarget collects every zone using one content key.
type keyTarget struct {
	content component.Content
	active  bool
	fadeIn  float64
	fadeOut float64
	inRank  int
	outRank int
}

func NewFadeSystem(fades *track.Scheduler, logger *log.Logger) *FadeSystem {
	return &FadeSystem{fades: fades, log: orDefault(logger), shown: map[string]bool{}}
}

// Forget drops the remembered target for key, so the next tick starts a
// fade if any of its zones is active. Used when a key's handle is replaced.
func (s *FadeSystem) Forget(key string) {
	delete(s.shown, key)
}

func (s *FadeSystem) Update(w *ecs.World) {
	if w == nil || s.fades == nil {
		return
	}
	zones := zonesInOrder(w)

	targets := make(map[string]*keyTarget, len(zones))
	order := make([]string, 0, len(zones))
	for _, ze := range zones {
		st, _ := ecs.Get(w, ze.ent, component.ZoneStateComponent)
		c := contentFor(w, ze)
		kt, ok := targets[c.Key]
		if !ok {
			kt = &keyTarget{content: c, fadeOut: ze.zone.FadeOutSeconds}
			targets[c.Key] = kt
			order = append(order, c.Key)
		} else if kt.content.Handle == nil {
			kt.content.Handle = c.Handle
		}

		// the zone whose edge caused the flip picks the duration
		switch {
		case st.Active && st.Changed && kt.inRank < 2:
			kt.fadeIn, kt.inRank = ze.zone.FadeInSeconds, 2
		case st.Active && kt.inRank < 1:
			kt.fadeIn, kt.inRank = ze.zone.FadeInSeconds, 1
		case !st.Active && st.Changed && kt.outRank < 1:
			kt.fadeOut, kt.outRank = ze.zone.FadeOutSeconds, 1
		}
		kt.active = kt.active || st.Active
	}

	for key := range s.shown {
		if _, ok := targets[key]; !ok {
			delete(s.shown, key)
		}
	}
	for _, key := range order {
		kt := targets[key]
		if kt.active == s.shown[key] {
			continue
		}
		s.shown[key] = kt.active
		if kt.active {
			_, _ = s.fades.FadeIn(key, kt.content.Handle, kt.fadeIn)
		} else {
			_, _ = s.fades.FadeOut(key, kt.content.Handle, kt.fadeOut)
		}
	}

	_, clock, _ := ecs.Singleton(w, component.ClockComponent)
	s.fades.Step(clock.DT)

	for _, ze := range zones {
		st, _ := ecs.Get(w, ze.ent, component.ZoneStateComponent)
		c := contentFor(w, ze)
		if f, ok := s.fades.Live(c.Key); ok {
			st.Alpha = f.Alpha()
		} else if c.Handle != nil {
			guard(s.log, "fade: key="+c.Key+" read alpha", func() { st.Alpha = c.Handle.Alpha() })
		}
		_ = ecs.Add(w, ze.ent, component.ZoneStateComponent, st)
	}
}
