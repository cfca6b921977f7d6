package main

import (
	"context"
	"log"
	"time"

	"wrapsnake/game"
	"wrapsnake/game/autopilot"
	"wrapsnake/game/manager"
	"wrapsnake/game/types"
)

const (
	frameStep = 16 * time.Millisecond
	// maxFrames caps a game the pilot manages to loop forever
	maxFrames = 200_000
)

type topScorer interface {
	TopScores(ctx context.Context, n int) ([]manager.GameRecord, error)
}

// runHeadless plays autopilot games on a virtual 60fps clock and logs each
// result.
func runHeadless(ctx context.Context, g *game.Game, st any, grid types.Grid, games int) {
	p := autopilot.New()
	now := time.Duration(0)
	epoch := time.Now()
	g.SetTimeSource(func() time.Time { return epoch.Add(now) })

	for i := 1; i <= games; i++ {
		if !g.Start(grid) {
			log.Fatalf("game %d: could not start from %s", i, g.State())
		}

		snap := g.Frame(now)
		for frame := 0; snap.Continue && frame < maxFrames; frame++ {
			g.SetDirection(p.Next(snap))
			now += frameStep
			snap = g.Frame(now)
		}

		if snap.Continue {
			log.Printf("game %d: stopped after %d frames with score %d", i, maxFrames, snap.Score)
			break
		}
		log.Printf("game %d: score %d, length %d, hit %s, high %d", i, snap.Score, len(snap.Snake), snap.Collision, snap.HighScore)
	}

	stats := g.Stats()
	log.Printf("played %d games: average %.1f, median %.1f, session best %d, all-time %d, average duration %s",
		stats.GamesPlayed(), stats.AverageScore(), stats.MedianScore(), stats.SessionBest(), stats.HighScore(), stats.AverageDuration())

	if ts, ok := st.(topScorer); ok {
		top, err := ts.TopScores(ctx, 5)
		if err != nil {
			log.Printf("failed to load top scores: %v", err)
			return
		}
		for rank, rec := range top {
			log.Printf("#%d %d points in %d ticks (%s)", rank+1, rec.Score, rec.Ticks, rec.ID)
		}
	}
}
