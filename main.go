package main

import "devdoctor/internal/cli"

func main() {
	cli.Execute()
}
