// Command tigo is a small infocmp/tic-flavored inspector for terminfo
// databases: dump an entry's capabilities, expand a single capability
// string against real parameters, or list every entry name under a
// database root.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jcorbin/terminfo"
)

var (
	rootFlag     string
	logLevelFlag string
	log          hclog.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tigo",
		Short: "inspect and expand terminfo capabilities",
		Long: `tigo reads the binary terminfo database used by ncurses-compatible
terminals: it can dump a terminal's capabilities, expand a single
parameterized string capability against real parameters, or list every
entry name under a database root.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = hclog.New(&hclog.LoggerOptions{
				Name:  "tigo",
				Level: hclog.LevelFromString(logLevelFlag),
			})
		},
	}

	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "terminfo database root (default: $TERMINFO/$TERMINFO_DIRS/~/.terminfo/"+defaultRoot+")")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "log level (trace|debug|info|warn|error)")

	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newExpandCmd())
	rootCmd.AddCommand(newListCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

const defaultRoot = "/usr/share/terminfo"

func openDatabase() (*terminfo.Database, error) {
	if rootFlag != "" {
		return terminfo.Open(rootFlag)
	}
	return terminfo.OpenDefault()
}
