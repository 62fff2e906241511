package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/ahryshan/bizarre-engine/internal/ecs"
	"github.com/ahryshan/bizarre-engine/internal/engine/config"
	"github.com/ahryshan/bizarre-engine/internal/engine/log"
	"github.com/ahryshan/bizarre-engine/internal/eventqueue"
	"github.com/ahryshan/bizarre-engine/internal/render"
	"github.com/ahryshan/bizarre-engine/internal/render/ebitenmesh"
)

// engineGame is the ebiten.Game adapter proving the kernel is wired to
// a real presentation backend. It owns nothing the kernel itself
// needs: World, Scene, and the mesh store all outlive it.
type engineGame struct {
	world  *ecs.World
	scene  *render.Scene
	meshes *ebitenmesh.Store
	logger *log.Logger
	ticks  int
}

func (g *engineGame) Update() error {
	g.ticks++
	if err := g.world.RunSchedule(ecs.Preupdate); err != nil {
		return err
	}
	if err := g.world.RunSchedule(ecs.Update); err != nil {
		return err
	}
	if err := g.scene.SyncCurrentFrame(g.meshes); err != nil {
		return err
	}
	g.scene.NextFrame()
	return nil
}

func (g *engineGame) Draw(screen *ebiten.Image) {
	_, items := g.scene.IndirectDrawIterator()
	for _, item := range items {
		// Demo-only simplification: the deferred-pass material handle
		// doubles as the mesh store's image handle, since this example
		// app has no material-instance system of its own to resolve a
		// real texture binding from.
		handle := render.MeshHandle(item.Materials[render.PassDeferred])
		img, ok := g.meshes.Image(handle)
		if !ok {
			continue
		}
		screen.DrawImage(img, &ebiten.DrawImageOptions{})
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tick %d", g.ticks), 0, 0)
}

func (g *engineGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg, err := ecs.GetWorldResource[config.Config](g.world)
	if err != nil {
		return outsideWidth, outsideHeight
	}
	return cfg.Window.Width, cfg.Window.Height
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := log.New(cfg.Logging)

	world := ecs.NewWorld()
	world.SetLogger(logger)
	world.AddSchedule(ecs.Init)
	world.AddSchedule(ecs.Preupdate)
	world.AddSchedule(ecs.Update)
	ecs.SetResource(world, *cfg)

	events := eventqueue.New()
	ecs.SetResource(world, events)

	scene := render.NewScene(cfg.Schedule.MaxFramesInFlight)
	scene.SetLogger(logger)
	ecs.SetResource(world, scene)

	meshes := ebitenmesh.NewStore()

	world.InitSchedule(ecs.Init)

	game := &engineGame{world: world, scene: scene, meshes: meshes, logger: logger}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Schedule.TickRateHz)

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal(err)
	}
}
