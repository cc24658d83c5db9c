package main

import "github.com/niwakai/exhibition-events/internal/cli"

func main() {
	cli.Execute()
}
