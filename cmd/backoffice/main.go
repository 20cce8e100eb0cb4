package main

import "github.com/jcalloway/backoffice/internal/cli"

func main() {
	cli.Execute()
}
