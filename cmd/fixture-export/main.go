package main

import "github.com/clubfeed/fixture-export/internal/cli"

func main() {
	cli.Execute()
}
