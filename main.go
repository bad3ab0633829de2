package main

import "room-furnisher/cmd"

func main() {
	cmd.Execute()
}
