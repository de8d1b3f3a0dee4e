// Cube Order Explorer - CLI application for measuring the order of move sequences.
package main

import (
	"github.com/SeamusWaldron/gocube_order/internal/cli"
)

func main() {
	cli.Execute()
}
