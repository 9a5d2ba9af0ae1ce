package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jcorbin/terminfo"
)

func newExpandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand <name> <capability> [params...]",
		Short: "compile and execute a single string capability",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, capability, rawParams := args[0], args[1], args[2:]

			db, err := openDatabase()
			if err != nil {
				log.Error("open database", "error", err)
				return err
			}

			entry, err := db.Load(name)
			if err != nil {
				log.Error("load entry", "name", name, "error", err)
				return err
			}

			terminal := terminfo.NewTerminal()
			prog, ok := entry.StringCapability(terminal, capability)
			if !ok {
				return fmt.Errorf("tigo: %s has no %q capability", name, capability)
			}

			params := make([]interface{}, len(rawParams))
			for i, p := range rawParams {
				if n, err := strconv.Atoi(p); err == nil {
					params[i] = n
				} else {
					params[i] = p
				}
			}

			out, err := prog.Exec(1, params...)
			if err != nil {
				log.Error("expand capability", "name", name, "capability", capability, "error", err)
				return err
			}

			os.Stdout.Write(out)

			if !isatty.IsTerminal(os.Stdout.Fd()) {
				fmt.Fprintf(os.Stderr, "%q\n", out)
			}
			return nil
		},
	}
}
