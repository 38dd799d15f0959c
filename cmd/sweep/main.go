// Command sweep replays a position script against a zone catalog without a
// window and prints every zone activation edge.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/milk9111/trilho/catalog"
	"github.com/milk9111/trilho/engine"
	"github.com/milk9111/trilho/sim"
	"github.com/milk9111/trilho/track"
)

type config struct {
	catalogPath string
	script      string
	seconds     float64
	tps         int
	verbose     bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.catalogPath, "catalog", catalog.DefaultName, "zone catalog yaml")
	flag.StringVar(&cfg.script, "script", "sweep", "position script")
	flag.Float64Var(&cfg.seconds, "seconds", 40, "simulated duration")
	flag.IntVar(&cfg.tps, "tps", 60, "ticks per second")
	flag.BoolVar(&cfg.verbose, "v", false, "log content handle calls")
	flag.Parse()

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config, out io.Writer) error {
	if cfg.tps <= 0 {
		return fmt.Errorf("sweep: tps must be positive, got %d", cfg.tps)
	}
	c, err := catalog.Load(cfg.catalogPath)
	if err != nil {
		return err
	}
	src, err := sim.OpenScript(cfg.script)
	if err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.verbose {
		logger = log.New(out, "", 0)
	}
	handles := map[string]*logContent{}
	eng := engine.New(engine.Options{
		Logger: logger,
		Resolve: func(z track.Zone) track.Content {
			h, ok := handles[z.Key()]
			if !ok {
				h = &logContent{key: z.Key(), log: logger}
				handles[z.Key()] = h
			}
			return h
		},
	})
	if err := eng.Apply(c); err != nil {
		return err
	}

	dt := 1.0 / float64(cfg.tps)
	ticks := int(cfg.seconds * float64(cfg.tps))
	var f engine.Frame
	for i := 0; i < ticks; i++ {
		t := float64(i) * dt
		cm, err := src.Position(t)
		if err != nil {
			return fmt.Errorf("sweep: t=%.3f: %w", t, err)
		}
		f = eng.Tick(engine.Sample{PositionCm: cm, Simulated: true}, dt)
		for _, evt := range f.Events {
			fmt.Fprintf(out, "t=%7.3fs %7.1fcm %-5s %-8s %s\n", t, f.PositionCm, f.Window.Direction, evt.Kind, evt.ZoneID)
		}
	}

	fmt.Fprintf(out, "final after %d ticks at %.1fcm:\n", f.Tick, f.PositionCm)
	for _, z := range f.Zones {
		place := "-"
		if z.HasPlacement {
			place = fmt.Sprintf("%.1f", z.PlacementX)
		}
		fmt.Fprintf(out, "  %-16s active=%-5v alpha=%.2f x=%s\n", z.ID, z.Active, z.Alpha, place)
	}
	return nil
}

// logContent stands in for real media: it keeps alpha and visibility and
// logs visibility changes.
type logContent struct {
	key     string
	log     *log.Logger
	visible bool
	alpha   float64
	worldX  float64
}

func (c *logContent) SetVisible(visible bool) {
	if visible != c.visible {
		c.log.Printf("content %s visible=%v", c.key, visible)
	}
	c.visible = visible
}

func (c *logContent) Alpha() float64 { return c.alpha }

func (c *logContent) SetAlpha(alpha float64) { c.alpha = alpha }

func (c *logContent) SetWorldX(x float64) {
	if x != c.worldX {
		c.log.Printf("content %s world_x=%.2f", c.key, x)
	}
	c.worldX = x
}
