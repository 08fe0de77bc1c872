package main

import "github.com/jahtz/gopxml/internal/cli"

func main() {
	cli.Execute()
}
