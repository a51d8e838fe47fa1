//go:build !ebiten

package app

import (
	"errors"

	"termlife/internal/config"
	"termlife/internal/core"
	"termlife/internal/loop"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("the GUI front-end requires building with -tags ebiten")

// Run always reports that the GUI build tag is missing.
func Run(*core.Grid, *config.Config, loop.Options, int) (*loop.Loop, error) {
	return nil, ErrNoGUI
}
