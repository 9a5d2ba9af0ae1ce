package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jcorbin/terminfo"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <root>",
		Short: "list every entry name indexed under a database root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := terminfo.Open(args[0])
			if err != nil {
				log.Error("open database", "root", args[0], "error", err)
				return err
			}

			names := db.Names()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			log.Debug("listed entries", "root", args[0], "count", len(names))
			return nil
		},
	}
}
