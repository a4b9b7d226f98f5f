package selconfigs

import (
	"github.com/reusee/sel/cmds"
	"github.com/reusee/sel/configs"
	"github.com/reusee/sel/vars"
)

// SourcePath is the input file to tokenize and parse. Empty means read from
// standard input.
type SourcePath string

var fileFlag = cmds.Var[string]("file")

func init() {
	cmds.GlobalExecutor.Define("source", cmds.Func(func(path string) {
		*fileFlag = path
	}).Desc("set the source file to parse"))
}

func (Module) SourcePath(
	loader configs.Loader,
) SourcePath {
	return SourcePath(vars.FirstNonZero(
		*fileFlag,
		configs.First[string](loader, "source"),
	))
}
