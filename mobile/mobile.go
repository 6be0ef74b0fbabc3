//go:build android || ios

package mobile

import (
	"log"

	"github.com/aerialrush/aerialrush/game"
	"github.com/hajimehoshi/ebiten/v2/mobile"
)

func init() {
	g, err := game.New(game.Options{ForceControls: true})
	if err != nil {
		log.Fatalf("mobile: %v", err)
	}
	mobile.SetGame(g)
}

// Dummy forces gomobile to export this package.
func Dummy() {}
