package main

import "github.com/bjaus/squads/internal/cli"

func main() {
	cli.Execute()
}
