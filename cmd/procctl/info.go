package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"prockit/process"
)

var infoCLICommand = cli.Command{
	Name:      "info",
	Usage:     "show attributes of a process",
	ArgsUsage: "<pid>",
	Action: func(c *cli.Context) error {
		pid, err := pidArg(c)
		if err != nil {
			return err
		}

		info, err := process.QueryInfo(pid, process.FieldAll, process.Heap)
		if err != nil {
			return err
		}
		defer process.FreeInfo(info, process.Heap)

		fmt.Printf("pid:       %d\n", info.PID)
		fmt.Printf("populated: %s\n", info.Fields)
		if info.Fields.Has(process.FieldExe) {
			fmt.Printf("exe:       %s\n", info.Exe)
		}
		if info.Fields.Has(process.FieldParent) {
			fmt.Printf("parent:    %d\n", info.Parent)
		}
		if info.Fields.Has(process.FieldPriority) {
			fmt.Printf("priority:  %d\n", info.Priority)
		}
		if info.Fields.Has(process.FieldUser) {
			fmt.Printf("user:      %s\n", info.User)
		}
		if info.Fields.Has(process.FieldCwd) {
			fmt.Printf("cwd:       %s\n", info.Cwd)
		}
		if info.Fields.Has(process.FieldCmdline) {
			fmt.Printf("cmdline:   %s\n", info.Cmdline)
		}
		if info.Fields.Has(process.FieldArgs) {
			fmt.Printf("args:      %s\n", strings.Join(info.Args, " | "))
		}
		if info.Fields.Has(process.FieldEnv) {
			fmt.Printf("env:       %d entries\n", len(info.Env))
		}
		return nil
	},
}
