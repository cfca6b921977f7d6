package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"wrapsnake/game"
	"wrapsnake/game/entity"
	"wrapsnake/game/types"
)

const (
	borderPadding = 10 // Padding around game area
	hudHeight     = 40 // Score band above the board
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Viewport returns the largest board of cell-sized squares that fits the
// window below the HUD.
func (r *Renderer) Viewport(cell int32) types.Grid {
	r.UpdateDimensions()
	if cell <= 0 {
		cell = 1
	}
	return types.Grid{
		Width:  int((r.screenWidth - borderPadding*2) / cell),
		Height: int((r.screenHeight - borderPadding*2 - hudHeight) / cell),
	}
}

func (r *Renderer) layout(grid types.Grid) {
	availableWidth := r.screenWidth - (borderPadding * 2)
	availableHeight := r.screenHeight - (borderPadding * 2) - hudHeight

	cellW := availableWidth / int32(grid.Width)
	cellH := availableHeight / int32(grid.Height)
	r.cellSize = max(min(cellW, cellH), 1)

	r.totalGridWidth = r.cellSize * int32(grid.Width)
	r.totalGridHeight = r.cellSize * int32(grid.Height)

	// centre the board under the HUD
	r.offsetX = (r.screenWidth - r.totalGridWidth) / 2
	r.offsetY = hudHeight + borderPadding + (availableHeight-r.totalGridHeight)/2
}

func (r *Renderer) Draw(snap game.Snapshot) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := max(r.screenHeight/45, 16)

	if !snap.Grid.Valid() {
		r.drawCentered("Press ENTER to start", r.screenHeight/2, fontSize*2, rl.RayWhite)
		return
	}

	r.layout(snap.Grid)
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.Color{R: 20, G: 20, B: 24, A: 255})

	for _, f := range snap.Fruits {
		r.drawFruit(f)
	}
	for _, b := range snap.Bombs {
		r.drawBomb(b)
	}
	r.drawSnake(snap)
	r.drawHUD(snap, fontSize)

	switch snap.State {
	case game.Ready:
		r.drawOverlay("Press ENTER to start", "", fontSize)
	case game.Paused:
		r.drawOverlay("Paused", "Press P to resume", fontSize)
	case game.Ended:
		title := fmt.Sprintf("Game Over! Hit %s", snap.Collision)
		if snap.NewHighScore {
			title = fmt.Sprintf("New high score: %d", snap.Score)
		}
		r.drawOverlay(title, "Press ENTER to play again", fontSize)
	}
}

func (r *Renderer) cellOrigin(x, y float64) rl.Vector2 {
	return rl.Vector2{
		X: float32(r.offsetX) + float32(x)*float32(r.cellSize),
		Y: float32(r.offsetY) + float32(y)*float32(r.cellSize),
	}
}

func (r *Renderer) cellCenter(c types.Cell) rl.Vector2 {
	half := float64(r.cellSize) / 2
	o := r.cellOrigin(float64(c.X), float64(c.Y))
	return rl.Vector2{X: o.X + float32(half), Y: o.Y + float32(half)}
}

func toColor(c entity.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func (r *Renderer) drawSnake(snap game.Snapshot) {
	segments := snap.Segments()
	base := toColor(snap.Color)
	size := rl.Vector2{X: float32(r.cellSize), Y: float32(r.cellSize)}

	// tail first so the head lands on top
	for i := len(segments) - 1; i >= 0; i-- {
		color := base
		if i == 0 {
			color = rl.Color{
				R: uint8(min(float32(base.R)*1.3, 255)),
				G: uint8(min(float32(base.G)*1.3, 255)),
				B: uint8(min(float32(base.B)*1.3, 255)),
				A: 255,
			}
		}
		rl.DrawRectangleV(r.cellOrigin(segments[i].X, segments[i].Y), size, color)
	}

	if len(segments) > 0 {
		r.drawHeading(segments[0], snap.Direction)
	}
}

// drawHeading marks the leading edge of the head with a small triangle
func (r *Renderer) drawHeading(head game.Point, dir types.Direction) {
	o := r.cellOrigin(head.X, head.Y)
	cell := float32(r.cellSize)
	half := cell / 2

	var v1, v2, v3 rl.Vector2
	switch dir {
	case types.Right:
		v1 = rl.Vector2{X: o.X + cell, Y: o.Y + half}
		v2 = rl.Vector2{X: o.X + half, Y: o.Y}
		v3 = rl.Vector2{X: o.X + half, Y: o.Y + cell}
	case types.Left:
		v1 = rl.Vector2{X: o.X, Y: o.Y + half}
		v2 = rl.Vector2{X: o.X + half, Y: o.Y + cell}
		v3 = rl.Vector2{X: o.X + half, Y: o.Y}
	case types.Down:
		v1 = rl.Vector2{X: o.X + half, Y: o.Y + cell}
		v2 = rl.Vector2{X: o.X + cell, Y: o.Y + half}
		v3 = rl.Vector2{X: o.X, Y: o.Y + half}
	case types.Up:
		v1 = rl.Vector2{X: o.X + half, Y: o.Y}
		v2 = rl.Vector2{X: o.X, Y: o.Y + half}
		v3 = rl.Vector2{X: o.X + cell, Y: o.Y + half}
	default:
		return
	}
	rl.DrawTriangle(v1, v2, v3, rl.Fade(rl.Yellow, 0.6))
}

func (r *Renderer) drawFruit(f entity.Fruit) {
	color := toColor(f.Kind.Color)
	center := r.cellCenter(f.Cell)
	radius := float32(r.cellSize) * 0.42

	switch f.Kind.Shape {
	case entity.Circle:
		rl.DrawCircleV(center, radius, color)
	case entity.Square:
		side := radius * 1.5
		rl.DrawRectangleV(rl.Vector2{X: center.X - side/2, Y: center.Y - side/2}, rl.Vector2{X: side, Y: side}, color)
	case entity.Triangle:
		rl.DrawPoly(center, 3, radius, -90, color)
	case entity.Diamond:
		rl.DrawPoly(center, 4, radius, 0, color)
	case entity.Star:
		rl.DrawPoly(center, 3, radius, -90, color)
		rl.DrawPoly(center, 3, radius, 90, color)
	case entity.Hexagon:
		rl.DrawPoly(center, 6, radius, 0, color)
	default:
		rl.DrawCircleV(center, radius, color)
	}
}

func (r *Renderer) drawBomb(b entity.Bomb) {
	center := r.cellCenter(b.Cell)
	radius := float32(r.cellSize) * 0.4
	rl.DrawCircleV(center, radius, rl.DarkGray)
	rl.DrawCircleLines(int32(center.X), int32(center.Y), radius, rl.Red)
	rl.DrawLineV(
		rl.Vector2{X: center.X + radius*0.5, Y: center.Y - radius*0.5},
		rl.Vector2{X: center.X + radius, Y: center.Y - radius},
		rl.Orange)
}

func (r *Renderer) drawHUD(snap game.Snapshot, fontSize int32) {
	y := (hudHeight + borderPadding - fontSize) / 2
	x := r.offsetX
	spacing := max(r.totalGridWidth/4, 140)

	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), x, y, fontSize, toColor(snap.Color))
	x += spacing
	rl.DrawText(fmt.Sprintf("Best: %d", snap.HighScore), x, y, fontSize, rl.Gold)
	x += spacing
	rl.DrawText(fmt.Sprintf("Avg: %.1f (%d)", snap.AverageScore, snap.GamesPlayed), x, y, fontSize, rl.Green)
	x += spacing
	rl.DrawText(fmt.Sprintf("Tick: %dms", snap.Interval.Milliseconds()), x, y, fontSize, rl.Purple)
}

func (r *Renderer) drawOverlay(title, subtitle string, fontSize int32) {
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.Fade(rl.Black, 0.6))

	mid := r.offsetY + r.totalGridHeight/2
	r.drawCentered(title, mid-fontSize, fontSize*2, rl.RayWhite)
	if subtitle != "" {
		r.drawCentered(subtitle, mid+fontSize*2, fontSize, rl.LightGray)
	}
}

func (r *Renderer) drawCentered(text string, y, fontSize int32, color rl.Color) {
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (r.screenWidth-width)/2, y, fontSize, color)
}
