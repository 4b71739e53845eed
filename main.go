package main

import "github.com/aipros/console/cmd"

func main() {
	cmd.Execute()
}
