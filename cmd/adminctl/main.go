package main

import "github.com/sibro/pawhaven/internal/cli"

func main() {
	cli.Execute()
}
