package main

import "github.com/jsfr/advent-of-code-2023/internal/cli"

func main() {
	cli.Execute()
}
