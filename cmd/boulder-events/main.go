package main

import "github.com/pfrederiksen/boulder-events/internal/cli"

func main() {
	cli.Execute()
}
