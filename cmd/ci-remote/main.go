// Command ci-remote installs the module and tests the remote client
// sub-module against an in-process server. It takes no arguments.
package main

import "github.com/aretw0/cellar/internal/ci"

var commands = []ci.Command{
	{"go", "install", "./..."},
	{"go", "test", "-v", "./pkg/adapters/remote/..."},
}

func main() {
	ci.Main(commands)
}
