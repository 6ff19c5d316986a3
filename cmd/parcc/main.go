package main

import "github.com/katalvlaran/parcc/cmd/parcc/commands"

func main() {
	commands.Execute()
}
