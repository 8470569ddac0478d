package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blitzr/blitzr-go/pkg/catalog"
	"github.com/blitzr/blitzr-go/pkg/client"
	"github.com/blitzr/blitzr-go/pkg/pagination"
)

var (
	flagParams  []string
	flagProduct string
	flagAll     bool
	flagLimit   int
	flagStart   int
	flagCount   bool
)

// callCmd represents the call command
var callCmd = &cobra.Command{
	Use:   "call <operation>",
	Short: "Invoke an API operation by name",
	Long: `Invoke any API operation by its registry name and print the JSON result.

Query parameters are passed as repeated -p key=value flags. Paginating
operations print one record per line; by default only the first page is
fetched, --all drains the whole sequence. Search operations accept
--count to print the total number of matches instead of the records.

Examples:
  blitzr call artist -p slug=eminem
  blitzr call artist.releases -p slug=eminem --all
  blitzr call search.artist -p query=emi --count
  blitzr call shop.release --product lp -p uuid=RE-1`,
	Args: cobra.ExactArgs(1),
	RunE: runCall,
}

func init() {
	rootCmd.AddCommand(callCmd)

	callCmd.Flags().StringArrayVarP(&flagParams, "param", "p", nil, "Query parameter as key=value (repeatable)")
	callCmd.Flags().StringVar(&flagProduct, "product", "", "Product type segment for shop operations (cd|lp|mp3|merch)")
	callCmd.Flags().BoolVar(&flagAll, "all", false, "Drain the whole paginating sequence")
	callCmd.Flags().IntVar(&flagLimit, "limit", 0, "Requested page size for paginating operations")
	callCmd.Flags().IntVar(&flagStart, "start", 0, "Start offset for paginating operations")
	callCmd.Flags().BoolVar(&flagCount, "count", false, "Print the total match count (search operations only)")
}

func runCall(cmd *cobra.Command, args []string) error {
	name := args[0]
	op, ok := catalog.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown operation %q, see \"blitzr ops\"", name)
	}

	params, err := parseParams(flagParams)
	if err != nil {
		return err
	}

	cat, err := newCatalog()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	switch op.Mode {
	case catalog.ModeObject, catalog.ModeList:
		raw, err := cat.Invoke(ctx, name, flagProduct, params)
		if err != nil {
			return err
		}
		return printJSON(out, raw)

	case catalog.ModeSearch:
		if flagCount {
			pager, err := cat.IterateSearch(name, params, true, pageOptions()...)
			if err != nil {
				return err
			}
			total, err := pager.Total(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, total)
			return nil
		}
		pager, err := cat.Iterate(name, flagProduct, params, pageOptions()...)
		if err != nil {
			return err
		}
		return printRecords(ctx, out, pager)

	default:
		if flagCount {
			return fmt.Errorf("--count only applies to search operations")
		}
		pager, err := cat.Iterate(name, flagProduct, params, pageOptions()...)
		if err != nil {
			return err
		}
		return printRecords(ctx, out, pager)
	}
}

// parseParams turns repeated key=value flags into request parameters.
func parseParams(pairs []string) (*client.Params, error) {
	params := client.NewParams()
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, want key=value", pair)
		}
		params.Set(key, value)
	}
	return params, nil
}

func pageOptions() []pagination.Option {
	var opts []pagination.Option
	if flagLimit > 0 {
		opts = append(opts, pagination.WithPageSize(flagLimit))
	}
	if flagStart > 0 {
		opts = append(opts, pagination.WithOffset(flagStart))
	}
	return opts
}

// printRecords prints one JSON record per line. Without --all only the first
// page worth of records is printed.
func printRecords(ctx context.Context, out io.Writer, pager *pagination.Pager) error {
	limit := flagLimit
	if limit <= 0 {
		limit = pagination.DefaultPageSize
	}

	printed := 0
	for record, err := range pager.All(ctx) {
		if err != nil {
			return err
		}
		line, err := json.Marshal(record)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(line))
		printed++
		if !flagAll && printed == limit {
			break
		}
	}
	return nil
}

func printJSON(out io.Writer, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	fmt.Fprintln(out, buf.String())
	return nil
}
