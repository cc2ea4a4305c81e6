package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/blockstack/common"
)

func main() {
	debug := flag.Bool("debug", false, "draw physics shapes")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	tuningFile := flag.String("tuning", "tuning.yaml", "tuning file in tuning/ (a disk copy overrides the embedded default)")
	seed := flag.Int64("seed", 0, "rng seed for stone spawning (0 = time-based)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("blockstack")

	game := NewGame(*tuningFile, *seed, *debug)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
