package main

import "horactl/cmd"

func main() {
	cmd.Execute()
}
