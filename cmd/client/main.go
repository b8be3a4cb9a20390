package main

import "itemkeeper/cmd/client/cmd"

func main() {
	cmd.Execute()
}
