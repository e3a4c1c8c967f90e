// stylepanel is a terminal control panel for applying font styles to the
// selected element of a design document
package main

import (
	"os"

	"github.com/drewhinkson/stylepanel/cmd/stylepanel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
