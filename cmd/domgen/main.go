package main

import "github.com/aalvaropc/domgen/internal/cli"

func main() {
	cli.Execute()
}
