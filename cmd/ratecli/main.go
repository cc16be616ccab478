package main

import "dnf_rate/cmd/ratecli/cmd"

func main() {
	cmd.Execute()
}
