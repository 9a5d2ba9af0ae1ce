package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jcorbin/terminfo"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <name>",
		Short: "print a terminal's names and capabilities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

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

			log.Debug("loaded entry", "name", name, "extended", entry.IsExtended(), "32bit", entry.Is32Bit())

			if err := terminfo.Dump(os.Stdout, entry); err != nil {
				return fmt.Errorf("dump: %w", err)
			}
			return nil
		},
	}
}
