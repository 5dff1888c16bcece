package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"trakthub/lib/configutil"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(aboutCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the trakthub version.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(configutil.Metadata["version"])
	},
}

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Prints project metadata.",
	Run: func(cmd *cobra.Command, args []string) {
		t := newTable()
		t.AppendHeader(table.Row{"Field", "Value"})
		for _, key := range []string{"name", "version", "description", "author", "license", "url"} {
			t.AppendRow(table.Row{key, configutil.Metadata[key]})
		}
		t.Render()
	},
}
