package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tranvictor/monascii/catalog"
	"github.com/tranvictor/monascii/ui"
)

var artCmd = &cobra.Command{
	Use:   "art [category]",
	Short: "List the catalog mint picks random art from",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}
		return listArt(newUI(), query)
	},
}

func listArt(u ui.UI, query string) error {
	categories := catalog.Categories()
	if query != "" {
		c, err := catalog.FindCategory(query)
		if err != nil {
			return err
		}
		categories = []catalog.Category{c}
	}
	for _, c := range categories {
		u.Section(c.Name)
		rows := make([][]string, 0, len(c.Items))
		for i, art := range c.Items {
			rows = append(rows, []string{fmt.Sprintf("%d", i+1), art, fmt.Sprintf("%d", len(art))})
		}
		u.Table([]string{"#", "Art", "Bytes"}, rows)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(artCmd)
}
