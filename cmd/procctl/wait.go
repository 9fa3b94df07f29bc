package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"

	"prockit/process"
)

var waitCLICommand = cli.Command{
	Name:      "wait",
	Usage:     "wait until a process terminates",
	ArgsUsage: "<pid>",
	Flags: []cli.Flag{
		cli.DurationFlag{
			Name:  "timeout, t",
			Usage: "give up after this long (negative means no deadline)",
			Value: -1,
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

		st, err := h.Wait(c.Duration("timeout"))
		if err != nil {
			if errors.Is(err, process.ErrTimeout) {
				return fmt.Errorf("pid %d still running after %s", pid, c.Duration("timeout"))
			}
			return err
		}

		switch {
		case st.Code < 0:
			fmt.Printf("pid %d exited, status unavailable\n", st.PID)
		case st.Success:
			fmt.Printf("pid %d exited cleanly\n", st.PID)
		default:
			fmt.Printf("pid %d exited with code %d\n", st.PID, st.Code)
		}
		if total := st.UserTime + st.SystemTime; total > 0 {
			fmt.Printf("cpu time: user %s, system %s\n", st.UserTime, st.SystemTime)
		}
		return nil
	},
}
