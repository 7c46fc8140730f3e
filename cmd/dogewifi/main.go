package main

import "github.com/dogeorg/dogewifi/cmd/dogewifi/cmd"

func main() {
	cmd.Execute()
}
