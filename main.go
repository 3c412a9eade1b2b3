package main

import "github.com/basuhimanish/challenge1a/cmd"

func main() {
	cmd.Execute()
}
