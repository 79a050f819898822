package main

import "github.com/klytics/refcat/cmd"

func main() {
	cmd.Execute()
}
