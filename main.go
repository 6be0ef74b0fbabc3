package main

import (
	"flag"
	"log"

	"github.com/aerialrush/aerialrush/common"
	"github.com/aerialrush/aerialrush/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (HUD, F5 reload, F9 copy build label)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	watch := flag.Bool("watch", false, "hot-reload prefabs edited in ./prefabs")
	touch := flag.Bool("touch", false, "always show the on-screen controls")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	g, err := game.New(game.Options{
		Debug:         *debug,
		Watch:         *watch,
		ForceControls: *touch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle(g.Build().AppName)
	ebiten.SetTPS(common.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
