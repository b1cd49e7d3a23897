package main

import "github.com/bugsniff/bugsniff/cmd/bugsniff"

func main() {
	bugsniff.Execute()
}
