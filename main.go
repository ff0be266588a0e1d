package main

import "github.com/doinkythederp/symbolizer-for-vex-v5/cmd"

func main() {
	cmd.Execute()
}
