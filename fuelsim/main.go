// Package main is the entry of the fuelsim command.
package main

import "github.com/sarchlab/fuelsim/fuelsim/cmd"

func main() {
	cmd.Execute()
}
