package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/trilho/catalog"
)

func main() {
	catalogPath := flag.String("catalog", catalog.DefaultName, "zone catalog yaml (falls back to the embedded catalog with the same name)")
	scriptName := flag.String("script", "sweep", "position script in sim/scripts or on disk; empty for keyboard only")
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	watch := flag.Bool("watch", true, "reload the catalog when it changes on disk")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("trilho")

	game, err := NewGame(Options{
		CatalogPath: *catalogPath,
		Script:      *scriptName,
		Debug:       *debug,
		Watch:       *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
