package main

import "datareceiver/cmd/client/cmd"

func main() {
	cmd.Execute()
}
