//go:build ebiten

package view

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifegame/src/runner"
	"lifegame/src/universe"
)

//Window renders the simulation into a desktop window
//the runner paces the ticks, the window only draws the latest generation on every frame
type Window struct {
	ctx    context.Context
	r      *runner.Runner
	img    *ebiten.Image
	buf    []byte
	width  int
	height int
}

func NewWindow(ctx context.Context) (*Window, error) {
	return &Window{ctx: ctx}, nil
}

func (w *Window) Register(r *runner.Runner) {
	w.r = r
	o := r.Options()
	w.width, w.height = o.Width, o.Height
	fw, fh := FrameSize(w.width, w.height)
	w.buf = make([]byte, 4*fw*fh)
}

//Refresh is a no-op, ebiten redraws every frame
func (w *Window) Refresh() {}

func (w *Window) Start() error {
	fw, fh := FrameSize(w.width, w.height)
	w.img = ebiten.NewImage(fw, fh)
	ebiten.SetWindowTitle("lifegame")
	ebiten.SetWindowSize(fw, fh)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

//Update handles the keyboard
func (w *Window) Update() error {
	if w.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if w.r.Status().RunningMode == runner.RunningStateRun {
			w.r.Stop()
		} else {
			w.r.Run(w.ctx)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		w.r.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		return w.r.Clear()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		w.r.InverseCell(y/(CellSize+1), x/(CellSize+1))
	}
	return nil
}

//Draw renders the current generation
func (w *Window) Draw(screen *ebiten.Image) {
	w.r.View(func(u *universe.Universe) {
		fillFrame(w.buf, u.Cells(), u.Width(), u.Height())
	})
	w.img.WritePixels(w.buf)
	screen.DrawImage(w.img, nil)
}

//Layout returns the logical screen size
func (w *Window) Layout(int, int) (int, int) {
	return FrameSize(w.width, w.height)
}
