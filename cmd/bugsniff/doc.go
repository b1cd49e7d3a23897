// Package bugsniff provides the command-line interface for the bugsniff
// tool. It configures subcommands (scan, check, rules, history), parses
// flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/bugsniff/bugsniff/cmd/bugsniff"
//	func main() { bugsniff.Execute() }
package bugsniff
