package main

import (
	"github.com/sw33tLie/chanrotate/cmd"
)

func main() {
	cmd.Execute()
}
