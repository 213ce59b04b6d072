package main

import "stuffer/cmd"

func main() {
	cmd.Execute()
}
