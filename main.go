package main

import "github.com/lifetracker/spending-calculator/cmd"

func main() {
	cmd.Execute()
}
