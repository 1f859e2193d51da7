package main

import "github.com/grubline/grubline/cmd"

func main() {
	cmd.Execute()
}
