package main

import (
	"os"

	"github.com/pd-org/go-event/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
