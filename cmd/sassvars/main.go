// Package main provides the sassvars CLI tool for finding unused Sass variables.
package main

import (
	"os"
)

func main() {
	os.Exit(reportError(os.Stderr, rootCmd.Execute()))
}
