package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli"

	"prockit/process"
)

var lsCLICommand = cli.Command{
	Name:  "ls",
	Usage: "list live processes",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "name, n",
			Usage: "only show processes with this executable name",
		},
	},
	Action: func(c *cli.Context) error {
		var (
			ids []process.ID
			err error
		)
		if filter := c.String("name"); filter != "" {
			ids, err = process.FindByName(filter, process.Heap)
		} else {
			ids, err = process.Enumerate(process.Heap)
		}
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "PID\tUSER\tCOMMAND")
		for _, id := range ids {
			info, err := process.QueryInfo(id, process.FieldUser|process.FieldCmdline|process.FieldExe, process.Heap)
			if err != nil {
				// Gone between the snapshot and the query.
				continue
			}
			user, command := "-", "-"
			if info.Fields.Has(process.FieldUser) {
				user = info.User
			}
			switch {
			case info.Fields.Has(process.FieldCmdline):
				command = info.Cmdline
			case info.Fields.Has(process.FieldExe):
				command = info.Exe
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", info.PID, user, command)
			process.FreeInfo(info, process.Heap)
		}
		return w.Flush()
	},
}
