package main

import "github.com/philipparndt/cubecard/cmd"

func main() {
	cmd.Execute()
}
