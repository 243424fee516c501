package main

import "flipcalc/cmd"

func main() {
	cmd.Execute()
}
