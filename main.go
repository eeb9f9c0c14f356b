package main

import "github.com/SamsaniMonish/ecomgen/cmd"

func main() {
	cmd.Execute()
}
