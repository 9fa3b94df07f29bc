package main

import (
	"fmt"
	"os"

	units "github.com/docker/go-units"
	"github.com/urfave/cli"

	"prockit/process"
)

var runCLICommand = cli.Command{
	Name:      "run",
	Usage:     "run a command and wait for it to finish",
	ArgsUsage: "<command> [args...]",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "dir, d",
			Usage: "working directory of the new process",
		},
		cli.StringSliceFlag{
			Name:  "env, e",
			Usage: "environment entry KEY=VALUE; using this replaces the inherited environment entirely",
		},
		cli.BoolFlag{
			Name:  "no-stdin",
			Usage: "leave the child's stdin closed",
		},
	},
	Action: func(c *cli.Context) error {
		if !c.Args().Present() {
			return fmt.Errorf("missing command")
		}

		desc := process.Description{
			Dir:    c.String("dir"),
			Args:   []string(c.Args()),
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		}
		if !c.Bool("no-stdin") {
			desc.Stdin = os.Stdin
		}
		if env := c.StringSlice("env"); len(env) > 0 {
			desc.Env = env
		}

		h, err := process.Start(desc)
		if err != nil {
			return err
		}
		defer h.Close()

		st, err := h.Wait(-1)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%s: pid %d finished after %s cpu (user %s, system %s)\n",
			name, st.PID,
			units.HumanDuration(st.UserTime+st.SystemTime),
			st.UserTime, st.SystemTime)
		if !st.Success {
			return cli.NewExitError("", st.Code)
		}
		return nil
	},
}
