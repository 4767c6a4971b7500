// Package render draws the aquarium with ebiten. It owns no simulation state:
// every frame it asks the Aquarium actor for a tick and paints the latest snapshot.
package render

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pb"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
)

const panelWidth = 240

var (
	waterColor = color.RGBA{R: 8, G: 24, B: 40, A: 255}
	glassColor = color.RGBA{R: 120, G: 170, B: 200, A: 255}
)

// Publisher receives every snapshot the renderer shows, e.g. a websocket hub.
type Publisher interface {
	Publish(snap *pb.WorldSnapshot) error
}

type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *pb.WorldSnapshot
	lastState  *pb.WorldSnapshot
	publisher  Publisher

	// UI Controls
	panel              *ui.Panel
	widgetPause        *ui.Checkbox
	widgetSideView     *ui.Checkbox
	widgetTank         *ui.Checkbox
	stepRequested      bool
	publishErrReported bool

	sprites map[string][]*sprite
	handles map[string][]behavior.Drawable
	colors  map[string]color.RGBA
	radius  map[string]float64

	cfg *simulation.Config

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64
}

// NewGame spawns the Aquarium actor in system and builds the UI.
// publisher may be nil.
func NewGame(ctx context.Context, cfg *simulation.Config, system actor.ActorSystem, publisher Publisher) (*Game, error) {
	// Buffer to avoid blocking the actor
	snapshotCh := make(chan *pb.WorldSnapshot, 10)

	worldPID, err := system.Spawn(ctx, "aquarium", simulation.NewAquarium(snapshotCh, cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn aquarium: %w", err)
	}

	g := &Game{
		ctx:        ctx,
		System:     system,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		lastState:  &pb.WorldSnapshot{},
		publisher:  publisher,
		sprites:    make(map[string][]*sprite),
		handles:    make(map[string][]behavior.Drawable),
		colors:     make(map[string]color.RGBA),
		radius:     make(map[string]float64),
		cfg:        cfg,
	}
	for _, sp := range cfg.Species {
		g.colors[sp.Name] = sp.RGBA()
		g.radius[sp.Name] = sp.Radius()
	}

	g.panel = ui.NewPanel(10, 10, panelWidth-20, float64(cfg.WindowHeight)-20, "Aquarium")
	g.widgetPause = g.panel.AddCheckbox("Pause [space]", false)
	g.panel.AddButton("Step [s]", g.requestStep)
	g.widgetSideView = g.panel.AddCheckbox("Side view", cfg.DisplaySideView)
	g.widgetTank = g.panel.AddCheckbox("Tank walls", cfg.DisplayTank)
	return g, nil
}

func (g *Game) requestStep() {
	g.stepRequested = true
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	g.panel.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.widgetPause.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.requestStep()
	}

	// Retrieve Latest State (Non-blocking), keeping only the freshest one
Drain:
	for {
		select {
		case snap := <-g.snapshotCh:
			g.applySnapshot(snap)
		default:
			break Drain
		}
	}

	if !g.widgetPause.Value || g.stepRequested {
		g.stepRequested = false
		if err := actor.Tell(g.ctx, g.worldPID, &pb.Tick{}); err != nil {
			return fmt.Errorf("failed to tick the aquarium: %w", err)
		}
	}
	return nil
}

func (g *Game) applySnapshot(snap *pb.WorldSnapshot) {
	g.lastState = snap
	for _, fs := range snap.GetFlocks() {
		name := fs.GetSpecies()
		for len(g.sprites[name]) < len(fs.GetBoids()) {
			s := &sprite{radius: g.radius[name]}
			g.sprites[name] = append(g.sprites[name], s)
			g.handles[name] = append(g.handles[name], s)
		}
		simulation.PresentSnapshot(fs, g.handles[name])
	}

	if g.publisher == nil {
		return
	}
	if err := g.publisher.Publish(snap); err != nil && !g.publishErrReported {
		g.System.Logger().Errorf("snapshot feed stopped: %v", err)
		g.publishErrReported = true
	}
}

// views splits the area right of the panel between the enabled projections.
func (g *Game) views(screenW, screenH int) []View {
	x := float64(panelWidth)
	w := float64(screenW) - x - 10
	h := float64(screenH) - 20
	tank := g.cfg.Bounds()
	if !g.widgetSideView.Value {
		return []View{NewView(TopView, tank, x, 10, w, h)}
	}
	top := h * tank.Z / (tank.Z + tank.Y)
	return []View{
		NewView(TopView, tank, x, 10, w, top-10),
		NewView(SideView, tank, x, 10+top, w, h-top),
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(waterColor)
	for _, v := range g.views(screen.Bounds().Dx(), screen.Bounds().Dy()) {
		if g.widgetTank.Value {
			x, y, w, h := v.TankRect()
			vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, glassColor, true)
		}
		ebitenutil.DebugPrintAt(screen, v.Plane.String(), int(v.X)+4, int(v.Y)+2)

		for _, sp := range g.cfg.Species {
			clr := g.colors[sp.Name]
			for _, s := range g.sprites[sp.Name] {
				s.draw(screen, v, clr)
			}
		}
	}

	g.panel.Lines = g.hudLines()
	g.panel.Draw(screen)
}

func (g *Game) hudLines() []string {
	lines := []string{
		fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("Update: %.2fms Draw: %.2fms", g.updateAvg, g.drawAvg),
		fmt.Sprintf("Frame: %d  Boids: %d", g.lastState.GetFrame(), g.lastState.GetPopulation()),
		"",
	}
	for _, fs := range g.lastState.GetFlocks() {
		s := simulation.MeasureSnapshot(fs)
		lines = append(lines,
			fmt.Sprintf("%s x%d", s.Species, s.Count),
			fmt.Sprintf(" speed %.2f (max %.2f)", s.MeanSpeed, s.TopSpeed),
			fmt.Sprintf(" spread %.1f", s.Spread),
		)
	}
	return lines
}

func (g *Game) Layout(w, h int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}
