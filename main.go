package main

import "lifeos/cmd"

func main() {
	cmd.Execute()
}
