package main

import (
	"fmt"

	"github.com/urfave/cli"

	"prockit/process"
)

var killCLICommand = cli.Command{
	Name:      "kill",
	Usage:     "forcibly terminate a process",
	ArgsUsage: "<pid>",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "wait, w",
			Usage: "wait for the process to terminate before returning",
		},
	},
	Action: func(c *cli.Context) error {
		pid, err := pidArg(c)
		if err != nil {
			return err
		}

		h, err := process.Open(pid, 0)
		if err != nil {
			return err
		}
		defer h.Close()

		if err := h.Kill(); err != nil {
			return err
		}
		if c.Bool("wait") {
			if _, err := h.Wait(-1); err != nil {
				return err
			}
		}
		fmt.Printf("pid %d killed\n", pid)
		return nil
	},
}
