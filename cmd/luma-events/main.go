package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pfrederiksen/luma-events/internal/cli"
)

func main() {
	err := cli.NewRootCmd().Execute()
	if err == nil {
		return
	}
	if errors.Is(err, cli.ErrNoData) {
		os.Exit(cli.ExitNoData)
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(cli.ExitError)
}
