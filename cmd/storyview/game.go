package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/storyview"
)

// palette colours the placeholder stories.
var palette = []storyview.Color{
	{R: 0.91, G: 0.30, B: 0.24, A: 1},
	{R: 0.20, G: 0.60, B: 0.86, A: 1},
	{R: 0.18, G: 0.80, B: 0.44, A: 1},
	{R: 0.95, G: 0.77, B: 0.06, A: 1},
	{R: 0.61, G: 0.35, B: 0.71, A: 1},
	{R: 0.90, G: 0.49, B: 0.13, A: 1},
}

// underlay is what shows through as the viewer fades during a dismiss drag.
var underlay = storyview.Color{R: 0.12, G: 0.12, B: 0.14, A: 1}

type game struct {
	cfg       storyview.Config
	log       *slog.Logger
	pixel     *ebiten.Image
	pager     *storyview.Pager
	container *storyview.Container
	input     *storyview.PointerTracker
	touches   []ebiten.TouchID

	keyboard bool
	paused   bool
	closed   bool
}

func newGame(cfg storyview.Config, log *slog.Logger) *game {
	g := &game{cfg: cfg, log: log}
	g.pixel = ebiten.NewImage(1, 1)
	g.pixel.Fill(storyview.Color{R: 1, G: 1, B: 1, A: 1}.RGBA())

	g.pager = storyview.NewPager(cfg.Layout(), cfg.Pages, cfg.InitialIndex, nil, nil)

	opts := cfg.Options()
	opts.Logger = log
	opts.HandleLongPress = func(visible bool) { g.paused = visible }
	opts.OnComplete = func() { g.closed = true }
	opts.OnIndexChange = func(i int) { log.Info("story changed", "index", i) }
	g.container = storyview.NewContainer(g.pager, opts)
	g.pager.SetListeners(g.container.OnScroll, g.container.OnViewableItemsChanged)

	g.input = storyview.NewPointerTracker(g.container.Gesture(), g.pager)
	g.input.SetLongPressDelay(cfg.LongPressDelay)
	g.container.SetKeyboardVisible(false)
	return g
}

func (g *game) Update() error {
	if g.closed || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		g.keyboard = !g.keyboard
		g.container.SetKeyboardVisible(g.keyboard)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.container.SetStoryIndex(g.container.StoryIndex() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.container.SetStoryIndex(g.container.StoryIndex() - 1)
	}
	if !ebiten.IsFocused() {
		g.input.Cancel()
	}

	dt := storyview.FrameDelta()
	var sample storyview.PointerSample
	sample, g.touches = storyview.ReadPointer(g.touches)
	g.input.Update(sample, dt)
	g.pager.Update(float32(dt))
	g.container.Update(float32(dt))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	page := g.cfg.Layout()
	screen.Fill(underlay.RGBA())

	root := g.container.RootStyle()
	g.fillRect(screen, root.Background, 0, root.TranslateY, page.Width, page.Height)

	first := int(math.Floor(g.container.Scroll().Load()/page.Width)) - 1
	for i := first; i <= first+2; i++ {
		if i < 0 || i >= g.cfg.Pages {
			continue
		}
		if !g.container.ComputeStyle(i).Visible(page) {
			continue
		}
		g.drawPage(screen, i)
	}

	status := fmt.Sprintf("story %d/%d  mode %s", g.container.StoryIndex()+1, g.cfg.Pages, g.container.Mode())
	if g.paused {
		status += "  [paused]"
	}
	if g.keyboard {
		status += "  [keyboard]"
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *game) Layout(_, _ int) (int, int) {
	return int(g.cfg.PageWidth), int(g.cfg.PageHeight)
}

// drawPage draws story i as a solid card through its page matrix.
func (g *game) drawPage(screen *ebiten.Image, i int) {
	page := g.cfg.Layout()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(page.Width, page.Height)
	op.GeoM.Concat(storyview.GeoM(g.container.PageMatrix(i)))
	c := palette[i%len(palette)]
	if g.paused && i == g.container.StoryIndex() {
		c = c.WithAlpha(0.7)
	}
	op.ColorScale.ScaleWithColor(c.RGBA())
	screen.DrawImage(g.pixel, op)
}

func (g *game) fillRect(screen *ebiten.Image, c storyview.Color, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	screen.DrawImage(g.pixel, op)
}
