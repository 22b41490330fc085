package main

import (
	"github.com/skyfleet/starhunt/internal/cli"
)

func main() {
	cli.Execute()
}
