package main

import (
	"fmt"
	"os"

	"github.com/yukikurage/migration-tracker/cmd/migctl/commands"
)

func main() {
	if err := commands.NewRootCmd(commands.DefaultEnv).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
