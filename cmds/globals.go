package cmds

import (
	"fmt"
	"os"
)

// GlobalExecutor serves the process-wide command line. Packages register
// their flags against it from init functions.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs the process arguments against the global executor. A bad
// command line prints the usage and terminates.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		GlobalExecutor.PrintUsage()
		os.Exit(1)
	}
}
