package main

import (
	"os"

	"github.com/darcyabjones/paf/cmd/pafcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
