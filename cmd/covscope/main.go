package main

import (
	"fmt"
	"os"

	"github.com/zjy-dev/covscope/cmd/covscope/app"
)

func main() {
	if err := app.NewCovscopeCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
