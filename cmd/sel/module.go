package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/sel/logs"
	"github.com/reusee/sel/selconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs selconfigs.Module
}
