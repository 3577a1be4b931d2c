//go:build !linux && !darwin && !windows

package terminal

import (
	"fmt"
	"io"
	"runtime"
)

// unsupportedController only reports that clearing is unavailable
type unsupportedController struct {
	w io.Writer
}

func newPlatformController(w io.Writer) Controller {
	return &unsupportedController{w: w}
}

func (c *unsupportedController) Clear() {
	fmt.Fprintf(c.w, "Cannot clear the terminal on unsupported platform %s\n", runtime.GOOS)
}
