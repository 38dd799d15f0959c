// Package engine runs the zone activation loop: it owns the ECS world, applies
// catalogs atomically, and publishes one immutable Frame per tick.
package engine

import (
	"fmt"
	"log"
	"math"
	"sync/atomic"

	"github.com/milk9111/trilho/catalog"
	"github.com/milk9111/trilho/ecs"
	"github.com/milk9111/trilho/ecs/component"
	"github.com/milk9111/trilho/ecs/system"
	"github.com/milk9111/trilho/track"
)

// Sample is one raw position reading.
type Sample struct {
	PositionCm float64
	// Simulated marks samples that came from a script or manual override
	// rather than the sensor.
	Simulated bool
}

// ContentResolver supplies the content handle for a zone when it first
// appears in a catalog. Returning nil leaves the zone without content.
type ContentResolver func(z track.Zone) track.Content

type Options struct {
	Logger  *log.Logger
	Resolve ContentResolver
}

// Engine is single-writer: Apply, Bind and Tick must be called from the same
// goroutine. Frame may be called from anywhere.
type Engine struct {
	world   *ecs.World
	fades   *track.Scheduler
	fading  *system.FadeSystem
	window  *system.WindowSystem
	log     *log.Logger
	resolve ContentResolver

	trackEnt ecs.Entity
	catalog  *catalog.Catalog
	zones    map[string]ecs.Entity
	order    []string
	tick     uint64

	frame atomic.Pointer[Frame]
}

func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	e := &Engine{
		world:   ecs.NewWorld(),
		fades:   track.NewScheduler(logger),
		window:  system.NewWindowSystem(),
		log:     logger,
		resolve: opts.Resolve,
		zones:   map[string]ecs.Entity{},
	}
	e.trackEnt = e.world.CreateEntity()
	_ = ecs.Add(e.world, e.trackEnt, component.ClockComponent, component.Clock{})

	e.world.AddSystem(system.NewPositionSystem(logger))
	e.world.AddSystem(e.window)
	e.world.AddSystem(system.NewHysteresisSystem())
	e.fading = system.NewFadeSystem(e.fades, logger)
	e.world.AddSystem(e.fading)
	e.world.AddSystem(system.NewPlacementSystem(logger))

	e.frame.Store(&Frame{})
	return e
}

// Apply validates c and swaps it in. On error the previous catalog stays
// active and nothing about the running state changes. Zones that survive by
// id keep their activation state; new zones start inactive; removed zones
// lose their fades and their content is hidden unless a surviving zone
// still shows it. Content whose remaining zones are all inactive fades out
// on the next tick.
func (e *Engine) Apply(c *catalog.Catalog) error {
	if err := c.Validate(); err != nil {
		e.log.Printf("engine: catalog rejected: %v", err)
		return fmt.Errorf("engine: apply: %w", err)
	}
	mapper, err := c.Mapper()
	if err != nil {
		return fmt.Errorf("engine: apply: %w", err)
	}

	keys := make(map[string]struct{}, len(c.Zones))
	for _, z := range c.Zones {
		keys[z.Key()] = struct{}{}
	}

	next := make(map[string]ecs.Entity, len(c.Zones))
	order := make([]string, 0, len(c.Zones))
	for i, z := range c.Zones {
		z.Index = i
		order = append(order, z.ID)

		ent, kept := e.zones[z.ID]
		if !kept {
			ent = e.world.CreateEntity()
			_ = ecs.Add(e.world, ent, component.ZoneStateComponent, component.ZoneState{})
		}

		prev, _ := ecs.Get(e.world, ent, component.ZoneComponent)
		if kept && prev != z {
			// definition moved; place static content again
			_ = ecs.Remove(e.world, ent, component.PlacementComponent)
		}
		_ = ecs.Add(e.world, ent, component.ZoneComponent, z)

		content, hasContent := ecs.Get(e.world, ent, component.ContentComponent)
		if !hasContent || content.Key != z.Key() {
			if _, still := keys[content.Key]; hasContent && !still {
				e.retire(content)
			}
			content = component.Content{Key: z.Key()}
			if e.resolve != nil {
				content.Handle = e.resolve(z)
			}
			_ = ecs.Add(e.world, ent, component.ContentComponent, content)
		}
		next[z.ID] = ent
	}

	for id, ent := range e.zones {
		if _, ok := next[id]; ok {
			continue
		}
		content, _ := ecs.Get(e.world, ent, component.ContentComponent)
		switch {
		case !e.keyInUse(next, content.Key):
			e.retire(content)
		case !e.handleInUse(next, content):
			// the key survives on another handle; hide this one and let the
			// fade system decide the new handle's visibility next tick
			e.retire(content)
			e.fading.Forget(content.Key)
		}
		e.world.DestroyEntity(ent)
	}
	_ = ecs.Add(e.world, e.trackEnt, component.TrackComponent, component.Track{
		Mapper:        mapper,
		WindowWidthCm: c.WindowWidthCm,
	})
	e.catalog = c
	e.zones = next
	e.order = order
	e.log.Printf("engine: applied catalog: %d zones, track [%.1f, %.1f]cm -> [%.1f, %.1f]",
		len(c.Zones), c.Physical.MinCm, c.Physical.MaxCm, c.Virtual.MinUnit, c.Virtual.MaxUnit)
	return nil
}

func (e *Engine) keyInUse(zones map[string]ecs.Entity, key string) bool {
	for _, ent := range zones {
		if c, _ := ecs.Get(e.world, ent, component.ContentComponent); c.Key == key {
			return true
		}
	}
	return false
}

func (e *Engine) handleInUse(zones map[string]ecs.Entity, content component.Content) bool {
	for _, ent := range zones {
		c, _ := ecs.Get(e.world, ent, component.ContentComponent)
		if c.Key == content.Key && sameHandle(c.Handle, content.Handle) {
			return true
		}
	}
	return false
}

// sameHandle compares handles by identity. Handles of uncomparable dynamic
// types are treated as distinct.
func sameHandle(a, b track.Content) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

// retire cancels a removed zone's fade and hides its content.
func (e *Engine) retire(c component.Content) {
	e.fades.Cancel(c.Key)
	if c.Handle == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			e.log.Printf("engine: hide retired content %s panicked: %v", c.Key, r)
		}
	}()
	c.Handle.SetAlpha(0)
	c.Handle.SetVisible(false)
}

// Bind replaces the content handle of a zone in the applied catalog. A live
// fade on the old handle is cancelled.
func (e *Engine) Bind(zoneID string, handle track.Content) error {
	ent, ok := e.zones[zoneID]
	if !ok {
		return fmt.Errorf("engine: bind: unknown zone %q", zoneID)
	}
	z, _ := ecs.Get(e.world, ent, component.ZoneComponent)
	e.fades.Cancel(z.Key())
	e.fading.Forget(z.Key())
	return ecs.Add(e.world, ent, component.ContentComponent, component.Content{Key: z.Key(), Handle: handle})
}

// Tick runs one evaluation pass for sample, advancing fades by dt seconds,
// and returns the committed frame.
func (e *Engine) Tick(s Sample, dt float64) Frame {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	e.tick++
	_ = ecs.Add(e.world, e.trackEnt, component.SampleComponent, component.Sample{
		PositionCm: s.PositionCm,
		Simulated:  s.Simulated,
	})
	_ = ecs.Add(e.world, e.trackEnt, component.ClockComponent, component.Clock{Tick: e.tick, DT: dt})

	e.world.Update()

	f := e.snapshot()
	e.frame.Store(&f)
	return f
}

// Frame returns the last committed frame. Safe for concurrent use.
func (e *Engine) Frame() Frame {
	return *e.frame.Load()
}

// Catalog returns the applied catalog, or nil before the first Apply.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Mapper returns the applied catalog's mapper.
func (e *Engine) Mapper() (track.Mapper, bool) {
	tr, ok := ecs.Get(e.world, e.trackEnt, component.TrackComponent)
	return tr.Mapper, ok
}

// ResetDirection forgets the previous sample, e.g. after the sensor jumped.
func (e *Engine) ResetDirection() {
	e.window.Reset()
}
