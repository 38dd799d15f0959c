package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/trilho/catalog"
	"github.com/milk9111/trilho/common"
	"github.com/milk9111/trilho/engine"
	"github.com/milk9111/trilho/render"
	"github.com/milk9111/trilho/sim"
	"github.com/milk9111/trilho/track"
)

const (
	// displaySmoothing is the per-update lerp factor for the drawn marker.
	// Hysteresis always sees the raw sample.
	displaySmoothing = 0.2

	panelTop    = 140
	panelHeight = 380
	barTop      = common.BaseHeight - 90
	barHeight   = 40
	barMargin   = 40
)

type Options struct {
	CatalogPath string
	Script      string
	Debug       bool
	Watch       bool
}

type Game struct {
	frames  int
	elapsed float64

	engine  *engine.Engine
	panels  *render.Registry
	input   *Input
	source  sim.Source
	watcher *catalog.Watcher

	catalogPath string
	scriptPath  string
	debug       bool

	manual    bool
	manualCm  float64
	scriptErr bool
	display   cp.Vector

	clipboard bool
	face      ebtext.Face

	paused  bool
	pauseUI *ebitenui.UI
	status  *widget.Text
	message string
}

func NewGame(opts Options) (*Game, error) {
	g := &Game{
		panels:      render.NewRegistry(),
		input:       NewInput(),
		catalogPath: opts.CatalogPath,
		debug:       opts.Debug,
		face:        ebtext.NewGoXFace(basicfont.Face7x13),
	}
	g.engine = engine.New(engine.Options{Resolve: g.panels.Resolve})

	c, err := catalog.Load(opts.CatalogPath)
	if err != nil {
		return nil, err
	}
	if err := g.engine.Apply(c); err != nil {
		return nil, err
	}
	g.manualCm = c.Physical.MinCm

	if opts.Script != "" {
		src, err := sim.OpenScript(opts.Script)
		if err != nil {
			return nil, err
		}
		g.source = src
		g.scriptPath = opts.Script
	} else {
		g.manual = true
	}

	if opts.Watch {
		var dirs []string
		for _, path := range []string{opts.CatalogPath, g.scriptPath} {
			if _, onDisk := catalog.ModTime(path); path != "" && onDisk {
				dirs = append(dirs, filepath.Dir(path))
			}
		}
		if len(dirs) > 0 {
			w, err := catalog.NewWatcher(dirs...)
			if err != nil {
				log.Printf("watcher disabled: %v", err)
			} else {
				g.watcher = w
			}
		}
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboard = true
	}

	g.pauseUI, g.status = NewPauseUI(g)
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()
	g.input.Update()

	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		g.status.Label = g.statusText()
		g.pauseUI.Update()
		return nil
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.elapsed += dt

	if g.input.ResetPressed {
		g.engine.ResetDirection()
	}
	f := g.engine.Tick(g.sample(dt), dt)
	if g.debug {
		for _, evt := range f.Events {
			log.Printf("tick %d: zone %s %s at %.1fcm", f.Tick, evt.ZoneID, evt.Kind, f.PositionCm)
		}
	}
	g.display = g.display.Lerp(cp.Vector{X: f.WorldX}, displaySmoothing)

	if g.input.CopyPressed {
		g.copyPosition(f)
	}
	return nil
}

// sample picks the position for this update: the keyboard override while it
// is engaged, otherwise the script.
func (g *Game) sample(dt float64) engine.Sample {
	prev := g.engine.Frame().PositionCm
	if g.input.MoveX != 0 && !g.manual {
		g.manual = true
		g.manualCm = prev
	}
	if g.input.ResumeScript && g.source != nil {
		g.manual = false
	}

	if !g.manual && g.source != nil {
		cm, err := g.source.Position(g.elapsed)
		if err == nil {
			g.scriptErr = false
			return engine.Sample{PositionCm: cm, Simulated: true}
		}
		if !g.scriptErr {
			log.Printf("script: %v; switching to keyboard", err)
			g.scriptErr = true
		}
		g.manual = true
		g.manualCm = prev
	}

	g.manualCm += g.input.MoveX * g.input.Speed() * dt
	if m, ok := g.engine.Mapper(); ok {
		g.manualCm = m.Clamp(g.manualCm)
	}
	return engine.Sample{PositionCm: g.manualCm, Simulated: true}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case name := <-g.watcher.Events:
		switch {
		case catalog.SameFile(name, g.catalogPath):
			g.reloadCatalog()
		case g.scriptPath != "" && catalog.SameFile(name, g.scriptPath):
			g.reloadScript()
		}
	case err := <-g.watcher.Errors:
		log.Printf("watcher: %v", err)
	default:
	}
}

// reloadScript recompiles the position script. A script that fails to
// compile leaves the previous one running.
func (g *Game) reloadScript() {
	src, err := sim.OpenScript(g.scriptPath)
	if err != nil {
		log.Printf("script reload failed, keeping previous: %v", err)
		g.message = "script reload failed: " + err.Error()
		return
	}
	g.source = src
	g.scriptErr = false
	log.Printf("script reloaded: %s", g.scriptPath)
	g.message = "reloaded " + g.scriptPath
}

func (g *Game) reloadCatalog() {
	c, err := catalog.Load(g.catalogPath)
	if err == nil {
		err = g.engine.Apply(c)
	}
	if err != nil {
		log.Printf("catalog reload failed, keeping previous: %v", err)
		g.message = "reload failed: " + err.Error()
		return
	}
	log.Printf("catalog reloaded: %s", g.catalogPath)
	g.message = fmt.Sprintf("reloaded %s (%d zones)", g.catalogPath, len(c.Zones))
}

func (g *Game) copyPosition(f engine.Frame) {
	if !g.clipboard {
		return
	}
	text := fmt.Sprintf("start_cm: %.1f # world_x %.2f", f.PositionCm, f.WorldX)
	clipboard.Write(clipboard.FmtText, []byte(text))
	g.message = "copied " + text
}

func (g *Game) statusText() string {
	c := g.engine.Catalog()
	if c == nil {
		return "no catalog"
	}
	s := fmt.Sprintf("%s: %d zones, window %.0fcm", g.catalogPath, len(c.Zones), c.WindowWidthCm)
	if g.message != "" {
		s += "\n" + g.message
	}
	return s
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x12, G: 0x12, B: 0x16, A: 0xff})

	f := g.engine.Frame()
	m, ok := g.engine.Mapper()
	if !ok {
		ebitenutil.DebugPrint(screen, "no catalog applied")
		return
	}

	view := render.View{
		Mapper: m,
		Center: g.display.X,
		Span:   g.viewSpan(m),
		Width:  common.BaseWidth,
		Height: common.BaseHeight,
	}
	for _, p := range g.panels.Panels() {
		p.Draw(screen, view, panelTop, panelHeight, g.face)
	}
	vector.StrokeLine(screen, common.BaseWidth/2, panelTop-10, common.BaseWidth/2, panelTop+panelHeight+10, 1, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x60}, false)

	g.drawTrackBar(screen, m, f)
	ebitenutil.DebugPrint(screen, g.hudText(f))

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// viewSpan shows three windows' worth of track around the cursor.
func (g *Game) viewSpan(m track.Mapper) float64 {
	c := g.engine.Catalog()
	span := m.Map(m.Physical().MinCm+3*c.WindowWidthCm) - m.Map(m.Physical().MinCm)
	if span <= 0 {
		v := m.Virtual()
		span = v.MaxUnit - v.MinUnit
	}
	if span < 0 {
		span = -span
	}
	return span
}

func (g *Game) drawTrackBar(screen *ebiten.Image, m track.Mapper, f engine.Frame) {
	phys := m.Physical()
	width := float64(common.BaseWidth - 2*barMargin)
	toX := func(cm float64) float32 {
		return float32(barMargin + common.InverseLerp(phys.MinCm, phys.MaxCm, cm)*width)
	}

	vector.StrokeRect(screen, barMargin, barTop, float32(width), barHeight, 1, color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}, false)
	for _, z := range g.engine.Catalog().Zones {
		x0, x1 := toX(z.StartCm), toX(z.EndCm())
		clr := color.RGBA{R: 0x50, G: 0x50, B: 0x60, A: 0xff}
		if st, ok := f.Zone(z.ID); ok && st.Active {
			clr = color.RGBA{R: 0x4f, G: 0x9d, B: 0xe0, A: 0xff}
		}
		vector.DrawFilledRect(screen, x0, barTop+4, x1-x0, barHeight-8, clr, false)
	}

	w := f.Window
	vector.StrokeRect(screen, toX(w.Left), barTop-6, toX(w.Right)-toX(w.Left), barHeight+12, 2, color.RGBA{R: 0xf2, G: 0xc1, B: 0x4e, A: 0xff}, false)

	marker := toX(m.Inverse(g.display.X))
	vector.StrokeLine(screen, marker, barTop-10, marker, barTop+barHeight+10, 2, color.White, false)
}

func (g *Game) hudText(f engine.Frame) string {
	source := "script"
	if g.manual {
		source = "keyboard"
	}
	current := "-"
	if c := g.engine.Catalog(); c != nil {
		if z, ok := track.CurrentZone(c.Zones, f.PositionCm); ok {
			current = z.ID
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f  tick %d  source %s\n", ebiten.ActualFPS(), f.Tick, source)
	fmt.Fprintf(&b, "position %.1fcm  world %.1f  %s\n", f.PositionCm, f.WorldX, f.Window.Direction)
	fmt.Fprintf(&b, "current zone: %s\n", current)
	fmt.Fprintf(&b, "active: %s\n", strings.Join(f.Active(), ", "))
	if g.debug {
		for _, z := range f.Zones {
			fmt.Fprintf(&b, "  %-16s active=%-5v alpha=%.2f\n", z.ID, z.Active, z.Alpha)
		}
	}
	if f.Invalid {
		b.WriteString("sensor sample invalid\n")
	}
	b.WriteString("arrows move  shift fast  R script  C copy  Esc pause")
	return b.String()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
