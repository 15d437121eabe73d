package main

import "github.com/tanq16/dust/cmd"

func main() {
	cmd.Execute()
}
