package main

import (
	"github.com/mwhite/phraseparty/internal/cli"
)

func main() {
	cli.Execute()
}
