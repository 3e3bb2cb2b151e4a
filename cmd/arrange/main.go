// Package main provides the arrange CLI.
package main

import "github.com/mesh-intelligence/arrange/internal/cli"

func main() {
	cli.Execute()
}
