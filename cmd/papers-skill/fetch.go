// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/papers-skill/internal/catalog"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Print the papers the catalog currently returns",
	Long: `Fetch reads the daily papers catalog the same way the summary intent does
and prints the result as a table, JSON or YAML. An unreachable catalog prints
an empty list, exactly as the voice skill would see it.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().Int("limit", 0, "number of papers (default dialog.summary_limit)")
	fetchCmd.Flags().Bool("json", false, "output as JSON")
	fetchCmd.Flags().Bool("yaml", false, "output as YAML")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")
	if asJSON && asYAML {
		return fmt.Errorf("--json and --yaml are mutually exclusive")
	}

	cfg, err := skillConfig(viper.GetViper(), loadedSecrets)
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		limit = cfg.Dialog.SummaryLimit
	}

	papers := catalog.NewFetcher(cfg.Catalog, logger.Named("catalog")).Fetch(cmd.Context(), limit)

	switch {
	case asJSON:
		return catalog.FormatJSON(papers, os.Stdout)
	case asYAML:
		return catalog.FormatYAML(papers, os.Stdout)
	default:
		catalog.FormatTable(papers, os.Stdout)
		return nil
	}
}
