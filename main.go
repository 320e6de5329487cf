package main

import (
	"os"

	"github.com/gridforge/mazecore/cmd"
	"github.com/gridforge/mazecore/pkg/common"
)

func main() {
	err := cmd.Execute()
	code := common.ExitCodeFor(err)
	if err != nil {
		common.Error("%v", err)
	}
	os.Exit(int(code))
}
