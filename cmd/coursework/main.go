package main

import "coursework/internal/cli"

func main() {
	cli.Execute()
}
