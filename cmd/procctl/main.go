package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli"

	"prockit/process"
)

const name = "procctl"

func main() {
	if err := process.InitArgs(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	app := cli.NewApp()
	app.Name = name
	app.Usage = "inspect and control operating-system processes"
	app.Commands = []cli.Command{
		lsCLICommand,
		infoCLICommand,
		runCLICommand,
		waitCLICommand,
		killCLICommand,
		peekCLICommand,
	}

	if err := app.Run(process.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		os.Exit(1)
	}
}

// pidArg parses the positional process identity argument of a command.
func pidArg(c *cli.Context) (process.ID, error) {
	arg := c.Args().First()
	if arg == "" {
		return 0, fmt.Errorf("missing <pid> argument")
	}
	pid, err := strconv.Atoi(arg)
	if err != nil || pid <= 0 {
		return 0, fmt.Errorf("invalid pid %q", arg)
	}
	return process.ID(pid), nil
}
