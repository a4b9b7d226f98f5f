package selconfigs

import (
	"github.com/reusee/sel/cmds"
	"github.com/reusee/sel/configs"
)

// DumpTokens enables the token sequence dump after tokenizing.
type DumpTokens bool

// DumpAST enables the expression dump after each top-level parse.
type DumpAST bool

var (
	dumpTokensFlag = cmds.Switch("-dump-tokens")
	dumpASTFlag    = cmds.Switch("-dump-ast")
)

func (Module) DumpTokens(
	loader configs.Loader,
) DumpTokens {
	if *dumpTokensFlag {
		return true
	}
	return DumpTokens(configs.First[bool](loader, "dump_tokens"))
}

func (Module) DumpAST(
	loader configs.Loader,
) DumpAST {
	if *dumpASTFlag {
		return true
	}
	return DumpAST(configs.First[bool](loader, "dump_ast"))
}
