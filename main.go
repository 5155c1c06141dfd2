// Package main is the entry point for the globup CLI application.
//
// This file bootstraps the application by invoking the command execution
// logic defined in the cmd package. The globup tool lists globally
// installed packages across npm, yarn, pnpm, and bun, and upgrades the
// ones the user selects.
package main

import "github.com/ajxudir/globup/cmd"

// main initializes and runs the globup CLI application.
//
// It delegates all command parsing and execution to the cmd package,
// which runs the interactive upgrade flow.
func main() {
	cmd.Execute()
}
