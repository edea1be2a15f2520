package main

import "github.com/mcoot/rebirth/internal/cli"

func main() {
	cli.Execute()
}
