package main

import "github.com/diogo/headline/internal/commands"

func main() {
	commands.Execute()
}
