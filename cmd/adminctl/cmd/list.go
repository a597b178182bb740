package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"adminboard/client"
	"adminboard/internal/listing"

	"github.com/spf13/cobra"
)

var (
	listPage     int
	listPageSize int
	listSearch   string
)

var listCmd = &cobra.Command{
	Use:   "list <resource>",
	Short: "List one page of a resource table",
	Long: `Fetches one page of a paginated table, e.g.:

  adminctl list master-data/countries --search Ind --page 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api := client.New(baseURL, token)

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		res, err := api.List(ctx, args[0], listing.Params{
			SearchText: listSearch,
			Page:       listPage,
			PageSize:   listPageSize,
		})
		if err != nil {
			return err
		}

		printRows(res.Rows)
		fmt.Printf("page %d of %d\n", listPage, res.TotalPages)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <resource> <id>",
	Short: "Soft-delete one row",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		api := client.New(baseURL, token)

		var id int64
		if _, err := fmt.Sscanf(args[1], "%d", &id); err != nil || id <= 0 {
			return fmt.Errorf("invalid id %q", args[1])
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := api.SoftDelete(ctx, args[0], id); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil
	},
}

func printRows(rows []client.Row) {
	if len(rows) == 0 {
		fmt.Println("no records")
		return
	}

	// Stable column order across rows.
	cols := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		cols = append(cols, k)
	}
	sort.Strings(cols)

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	for _, c := range cols {
		fmt.Fprintf(w, "%s\t", c)
	}
	fmt.Fprintln(w)
	for _, row := range rows {
		for _, c := range cols {
			fmt.Fprintf(w, "%v\t", row[c])
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "page number (1-indexed)")
	listCmd.Flags().IntVar(&listPageSize, "page-size", listing.DefaultPageSize, "records per page")
	listCmd.Flags().StringVar(&listSearch, "search", "", "server-side search text")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
}
