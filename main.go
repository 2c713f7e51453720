package main

import "hustle/cmd"

func main() {
	cmd.Execute()
}
