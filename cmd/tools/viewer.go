package tools

import (
	"fmt"
	"image"
	"os"
	"os/exec"

	"github.com/bgraf/trackpic/config"
	"github.com/bgraf/trackpic/option"
	"github.com/disintegration/imaging"
)

// ShowImage writes img to a temporary PNG file and opens it in the user's
// image viewer. The viewer is taken from configuration `tools.viewer`, then
// the environment variable VIEWER, and defaults to xdg-open.
// The path of the temporary file is returned; it is not removed because the
// viewer may still be reading it.
func ShowImage(img image.Image) (string, error) {
	viewer, err := lookupViewer()
	if err != nil {
		return "", err
	}

	f, err := os.CreateTemp("", "trackpic-*.png")
	if err != nil {
		return "", fmt.Errorf("create temporary image: %w", err)
	}

	err = imaging.Encode(f, img, imaging.PNG)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", fmt.Errorf("write temporary image: %w", err)
	}

	cmd := exec.Command(viewer, f.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return f.Name(), fmt.Errorf("start viewer '%s': %w", viewer, err)
	}

	return f.Name(), cmd.Process.Release()
}

func lookupViewer() (string, error) {
	viewer := config.Viewer()
	if viewer.IsNone() {
		if env, ok := os.LookupEnv("VIEWER"); ok && env != "" {
			viewer = option.Some(env)
		}
	}

	name := viewer.OrElse(config.DefaultViewer())
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("image viewer '%s' not found, set tools.viewer or VIEWER: %w", name, err)
	}
	return path, nil
}
