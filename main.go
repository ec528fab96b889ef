package main

import (
	"os"

	"github.com/ganttplanner/ganttplanner/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
