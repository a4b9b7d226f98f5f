package main

import (
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/sel/cmds"
	"github.com/reusee/sel/logs"
	"github.com/reusee/sel/selconfigs"
	"github.com/reusee/sel/sellang"
)

var replFlag = cmds.Switch("repl")

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(new(Module))

	scope.Call(func(
		logger logs.Logger,
		sourcePath selconfigs.SourcePath,
		dumpTokens selconfigs.DumpTokens,
		dumpAST selconfigs.DumpAST,
	) {

		if *replFlag {
			os.Exit(runREPL(bool(dumpTokens)))
		}

		var content []byte
		var name string
		if sourcePath != "" {
			b, err := os.ReadFile(string(sourcePath))
			ce(err)
			content = b
			name = string(sourcePath)
		} else {
			b, err := io.ReadAll(os.Stdin)
			ce(err)
			content = b
			name = "<stdin>"
		}

		logger.Debug("parse",
			"source", name,
			"bytes", len(content),
		)

		source := sellang.NewSource(name, string(content))
		os.Exit(run(source, bool(dumpTokens), bool(dumpAST)))
	})
}

// run tokenizes and parses the source, consuming top-level expressions until
// exhaustion or the first error. Returns the process exit status.
func run(source *sellang.Source, dumpTokens bool, dumpAST bool) int {
	tokens, err := sellang.Tokenize(source.Content)
	if err != nil {
		return report(source, err)
	}
	if dumpTokens {
		sellang.DumpTokens(os.Stdout, tokens)
	}

	parser := sellang.NewParser(tokens)
	for {
		expr, err := parser.ParseNext()
		if err != nil {
			return report(source, err)
		}
		if expr == nil {
			break
		}
		if dumpAST {
			sellang.DumpExpr(os.Stdout, expr)
		}
	}
	return 0
}

func report(source *sellang.Source, err error) int {
	if msg, ok := sellang.FormatError(source, err); ok {
		fmt.Print(msg)
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	return 1
}

func ce(err error) {
	if err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(1)
	}
}
