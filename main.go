package main

import "restosim/cmd"

func main() {
	cmd.Execute()
}
