package main

import "github.com/daehopark/malsum/internal/commands"

func main() {
	commands.Execute()
}
