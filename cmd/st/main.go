package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sensortower/st-cli/internal/cmd"
)

var (
	executeCmd  = cmd.Execute
	mapExitCode = cmd.ExitCode
	terminate   = os.Exit
)

func run(args []string) int {
	ctx := context.Background()
	if err := executeCmd(ctx, args); err != nil {
		_, _ = fmt.Fprint(os.Stderr, cmd.HandleError(err))
		return mapExitCode(err)
	}
	return 0
}

func main() {
	terminate(run(os.Args[1:]))
}
