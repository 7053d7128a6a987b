package main

import "github.com/mouse-blink/uniconv/cmd"

func main() {
	cmd.Execute()
}
