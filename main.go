package main

import (
	"fmt"
	"os"

	"github.com/playbill/playbill/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "playbill:", err)
		os.Exit(1)
	}
}
