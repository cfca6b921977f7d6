package main

import (
	"context"
	"flag"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"wrapsnake/game"
	"wrapsnake/game/autopilot"
	"wrapsnake/game/manager"
	"wrapsnake/game/types"
	"wrapsnake/store"
	"wrapsnake/ui"
)

func main() {
	cols := flag.Int("cols", 0, "Board width in cells (0 = fit window)")
	rows := flag.Int("rows", 0, "Board height in cells (0 = fit window)")
	cell := flag.Int("cell", 24, "Cell size in pixels when fitting the window")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	storeKind := flag.String("store", "sqlite", "High score store: sqlite, json or memory")
	dbPath := flag.String("db", "data/wrapsnake.db", "Path of the store file")
	pilot := flag.Bool("autopilot", false, "Let the computer steer")
	tailVacates := flag.Bool("tail-vacates", false, "Allow the head to follow into the cell the tail leaves")
	staticBombs := flag.Bool("static-bombs", false, "Use fixed bomb spawn and despawn chances")
	headless := flag.Bool("headless", false, "Run autopilot games without a window")
	games := flag.Int("games", 10, "Number of games to play with -headless")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	ctx := context.Background()

	st := store.OpenOrMemory(*storeKind, *dbPath)
	defer st.Close()

	cfg := game.DefaultConfig()
	cfg.TailVacates = *tailVacates
	cfg.Bombs.Dynamic = !*staticBombs

	g, err := game.New(ctx, cfg, types.NewRand(*seed), manager.NewStateManager(ctx, st))
	if err != nil {
		log.Fatalf("invalid game config: %v", err)
	}
	log.Printf("seed %d, %s store at %s", *seed, *storeKind, *dbPath)

	if *headless {
		grid := types.Grid{Width: *cols, Height: *rows}
		if !grid.Valid() {
			grid = types.Grid{Width: 32, Height: 24}
		}
		runHeadless(ctx, g, st, grid, *games)
		return
	}

	rl.InitWindow(1280, 800, "wrapsnake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)
	// Esc pauses instead of closing
	rl.SetExitKey(0)

	renderer := ui.NewRenderer()
	var p *autopilot.Pilot
	if *pilot {
		p = autopilot.New()
	}

	boardFor := func() types.Grid {
		if *cols > 0 && *rows > 0 {
			return types.Grid{Width: *cols, Height: *rows}
		}
		return renderer.Viewport(int32(*cell))
	}

	var snap game.Snapshot
	for !rl.WindowShouldClose() {
		switch {
		case rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace):
			if grid := boardFor(); grid.Valid() {
				g.Start(grid)
			}
		case rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeyEscape):
			g.TogglePause()
		}

		if d := readDirection(); d != types.None {
			g.SetDirection(d)
		}
		if p != nil && g.State() == game.Running {
			g.SetDirection(p.Next(snap))
		}

		snap = g.Frame(time.Duration(rl.GetTime() * float64(time.Second)))
		renderer.Draw(snap)
	}
}

func readDirection() types.Direction {
	switch {
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW):
		return types.Up
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD):
		return types.Right
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS):
		return types.Down
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA):
		return types.Left
	default:
		return types.None
	}
}
