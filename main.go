package main

import "github.com/KostasZigo/gitsha/cmd"

func main() {
	cmd.Execute()
}
