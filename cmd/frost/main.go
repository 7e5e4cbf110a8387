package main

import "github.com/chazu/frost/pkg/cli"

func main() {
	cli.Execute()
}
