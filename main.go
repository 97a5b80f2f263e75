package main

import "github.com/backline-audio/backline/cmd"

func main() {
	cmd.Execute()
}
