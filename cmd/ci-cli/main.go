// Command ci-cli installs the module together with the companion cellar
// CLI, then runs the test suite. It takes no arguments.
package main

import "github.com/aretw0/cellar/internal/ci"

var commands = []ci.Command{
	{"go", "install", "./..."},
	{"go", "install", "github.com/aretw0/cellar/cmd/cellar"},
	{"go", "test", "-v", "./..."},
}

func main() {
	ci.Main(commands)
}
