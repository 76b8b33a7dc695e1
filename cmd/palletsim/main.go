package main

import (
	"github.com/lbruckner/palletsim/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
