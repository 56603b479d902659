package main

import "versus/cmd/versus/cmd"

func main() {
	cmd.Execute()
}
