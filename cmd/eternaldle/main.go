package main

import (
	"github.com/eternaldle/eternaldle-go/internal/cli"
)

func main() {
	cli.Execute()
}
