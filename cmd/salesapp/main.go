package main

import (
	"os"

	"github.com/Harihuynh2007/sales-app/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
