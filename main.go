package main

import "fastcat.org/go/linelen/cmd"

func main() {
	cmd.Main()
}
