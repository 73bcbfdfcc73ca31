package main

import "github.com/skeeto/showerthoughts/internal/cli"

func main() {
	cli.Execute()
}
