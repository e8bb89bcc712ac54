package main

import "github.com/mouse-blink/glossa/cmd"

func main() {
	cmd.Execute()
}
