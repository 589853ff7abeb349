package main

import "smells/internal/cli"

func main() {
	cli.Execute()
}
