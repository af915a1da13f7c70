// cmd/compbench/main.go
package main

import (
	cmd "github.com/mwiater/compbench/internal/cli"
)

// main starts the compbench CLI application by delegating to the
// cobra root command defined in the compbench package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
