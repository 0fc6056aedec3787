package main

import (
	"personacard/cmd/personacard/cmd"
)

func main() {
	cmd.Execute()
}
