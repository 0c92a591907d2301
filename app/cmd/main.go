package main

import (
	"github.com/ribgsilva/note-list-api/app/cmd/store"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		listCommands()
		return
	}

	switch os.Args[1] {
	case "store":
		os.Exit(store.Run(os.Stdout, os.Args[2:]))
	default:
		listCommands()
	}
}

func listCommands() {
	println("Commands")
	println("\tstore\t\t\t- Manage the notes list")
	store.ListCommands()
}
