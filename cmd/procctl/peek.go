package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	units "github.com/docker/go-units"
	"github.com/urfave/cli"

	"prockit/hexdump"
	"prockit/process"
)

var peekCLICommand = cli.Command{
	Name:      "peek",
	Usage:     "read and dump another process's memory",
	ArgsUsage: "<pid> <address>",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "size, s",
			Usage: "number of bytes to read (accepts human sizes like 4kb)",
			Value: "256",
		},
		cli.BoolFlag{
			Name:  "color",
			Usage: "colorize the dump",
		},
	},
	Action: func(c *cli.Context) error {
		pid, err := pidArg(c)
		if err != nil {
			return err
		}
		addr, err := addrArg(c.Args().Get(1))
		if err != nil {
			return err
		}
		size, err := units.RAMInBytes(c.String("size"))
		if err != nil || size <= 0 {
			return fmt.Errorf("invalid size %q", c.String("size"))
		}

		h, err := process.Open(pid, process.CapMemoryRead)
		if err != nil {
			return err
		}
		defer h.Close()

		data, err := h.ReadMemory(addr, int(size))
		if err != nil {
			return err
		}

		opts := hexdump.DefaultOptions()
		opts.StartOffset = uint64(addr)
		opts.OffsetWidth = 12
		opts.Colorize = c.Bool("color")
		hexdump.DumpToWriter(os.Stdout, data, opts)
		return nil
	},
}

func addrArg(arg string) (process.MemoryAddress, error) {
	if arg == "" {
		return 0, fmt.Errorf("missing <address> argument")
	}
	addr, err := strconv.ParseUint(strings.TrimPrefix(arg, "0x"), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q", arg)
	}
	return process.MemoryAddress(addr), nil
}
