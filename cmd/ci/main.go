// Command ci installs the module and runs its full test suite. It takes no
// arguments; any failing step aborts the run with that step's exit status.
package main

import "github.com/aretw0/cellar/internal/ci"

var commands = []ci.Command{
	{"go", "install", "./..."},
	{"go", "test", "-v", "./..."},
}

func main() {
	ci.Main(commands)
}
