package main

import (
	"os"

	"github.com/oleksiybondar/eqlgo/cmd/eql/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
