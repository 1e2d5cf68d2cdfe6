package main

import "editorscan/internal/cli"

func main() {
	cli.Execute()
}
