package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/reusee/sel/sellang"
)

const (
	promptMain = "sel> "
	promptCont = "...> "

	historyFile = ".sel_history"
)

// runREPL reads forms interactively, probing the input by re-parsing so that
// incomplete forms keep the prompt open across lines. Complete forms are
// dumped as AST (and optionally as tokens).
func runREPL(dumpTokens bool) int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		code, ok := readForm(ln)
		if !ok {
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(code) == "" {
			continue
		}

		source := sellang.NewSource("<repl>", code)

		tokens, err := sellang.Tokenize(code)
		if err != nil {
			printError(source, err)
			continue
		}
		if dumpTokens {
			sellang.DumpTokens(os.Stdout, tokens)
		}

		exprs, err := sellang.ParseAll(tokens)
		if err != nil {
			printError(source, err)
			continue
		}
		for _, expr := range exprs {
			sellang.DumpExpr(os.Stdout, expr)
		}

		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
}

// readForm accumulates lines until the buffer tokenizes and parses without an
// end-of-input error.
func readForm(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if probeComplete(b.String()) {
			return b.String(), true
		}
	}
}

func probeComplete(src string) bool {
	tokens, err := sellang.Tokenize(src)
	if err != nil {
		return !sellang.IsIncomplete(err)
	}
	_, err = sellang.ParseAll(tokens)
	if err != nil {
		return !sellang.IsIncomplete(err)
	}
	return true
}

func printError(source *sellang.Source, err error) {
	if msg, ok := sellang.FormatError(source, err); ok {
		fmt.Print(msg)
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
}
