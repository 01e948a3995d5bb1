package main

import "meeting-sync/cmd"

func main() {
	cmd.Execute()
}
