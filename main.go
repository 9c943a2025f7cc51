package main

import "github.com/LegacyCodeHQ/incmap/cmd"

func main() {
	cmd.Execute()
}
