package main

import "github.com/Lzww0608/guid/internal/cli"

func main() {
	cli.Execute()
}
