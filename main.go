package main

import "github.com/jjtimmons/contig/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
