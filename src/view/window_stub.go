//go:build !ebiten

package view

import (
	"context"
	"errors"

	"lifegame/src/runner"
)

var ErrNoWindow = errors.New("window rendering requires building with the 'ebiten' tag")

//Window is a placeholder that satisfies the API expected by the GUI build
type Window struct{}

//NewWindow always fails in the headless build
func NewWindow(context.Context) (*Window, error) {
	return nil, ErrNoWindow
}

func (w *Window) Register(*runner.Runner) {}
func (w *Window) Refresh()                {}
func (w *Window) Start() error            { return ErrNoWindow }
