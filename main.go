package main

import "github.com/Tiliavir/busy-bee/cmd"

func main() {
	cmd.Execute()
}
