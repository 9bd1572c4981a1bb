// Package main is the entry point for mpvctl.
package main

import "github.com/yhkl-dev/mpvctl/cmd"

func main() {
	cmd.Execute()
}
