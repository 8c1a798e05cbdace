package main

import "github.com/Jacquart08/ultimate-overlay/cmd"

func main() {
	cmd.Execute()
}
