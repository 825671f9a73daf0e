//go:build windows

package imageprint

import (
	"flag"
	"fmt"
	"image"
	"io"
)

var (
	forceITerm = flag.Bool("force_iterm", false, "value to force iterm detection to take (implementation variant: no rasterm)")
)

func isTermItermWez() bool {
	return *forceITerm
}

func printRasTerm(w io.Writer, img image.Image) error {
	return fmt.Errorf("imageprint: rasterm not supported on windows")
}
