package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/blitzr/blitzr-go/pkg/catalog"
)

// opsCmd represents the ops command
var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List all addressable API operations",
	Long: `List every API operation the call command can dispatch, with its
endpoint path and response mode.

Modes:
  object - a single JSON object, one request
  list   - a JSON array, one request
  pager  - an auto-paginating sequence of records
  search - an auto-paginating sequence with an optional total count`,
	RunE: runOps,
}

func init() {
	rootCmd.AddCommand(opsCmd)
}

func runOps(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OPERATION\tPATH\tMODE\tPRODUCT TYPES")
	for _, name := range catalog.Names() {
		op, _ := catalog.Lookup(name)
		products := ""
		for i, p := range op.ProductTypes {
			if i > 0 {
				products += "|"
			}
			products += string(p)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, op.Path, op.Mode, products)
	}
	return w.Flush()
}
