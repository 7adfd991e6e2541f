package game

import (
	"errors"
	"fmt"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/caloicode/galaxy-generator/internal/config"
	"github.com/caloicode/galaxy-generator/internal/render"
)

// saveScreenshot renders the current view into an offscreen image, asks for
// a destination with a native save dialog, and writes a PNG. Cancelling the
// dialog is not an error.
func (g *Game) saveScreenshot() error {
	offscreen := ebiten.NewImage(config.WindowWidth, config.WindowHeight)
	defer offscreen.Deallocate()

	g.renderScene(offscreen)
	img := render.Snapshot(offscreen)

	path, err := zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.ConfirmOverwrite(),
		zenity.Filename("galaxy.png"),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	g.logger.Info("saved screenshot", "path", path)
	return nil
}
