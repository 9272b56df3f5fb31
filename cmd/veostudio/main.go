package main

import "github.com/deepnoodle-ai/veostudio/cmd/veostudio/cli"

func main() {
	cli.Execute()
}
