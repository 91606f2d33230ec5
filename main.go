package main

import (
	"os"

	"github.com/nehal/linguo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
