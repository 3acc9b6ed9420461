package main

import "hoopvision/cmd"

func main() {
	cmd.Execute()
}
