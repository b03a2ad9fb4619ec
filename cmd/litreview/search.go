// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litreview/internal/project"
	"github.com/pdiddy/litreview/internal/retriever"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run a project query against the selected databases",
	RunE: func(cmd *cobra.Command, args []string) error {
		queryIndex, _ := cmd.Flags().GetInt("query-index")
		saveTo, _ := cmd.Flags().GetString("save")
		normalized, _ := cmd.Flags().GetBool("normalized")

		store, p, err := openProject(cmd)
		if err != nil {
			return err
		}
		if queryIndex < 0 || queryIndex >= len(p.SearchQueries) {
			return fmt.Errorf("query index %d out of range [0,%d)", queryIndex, len(p.SearchQueries))
		}
		if len(p.SelectedDatabases) == 0 {
			return fmt.Errorf("project has no selected databases; see 'litreview databases'")
		}

		query := p.SearchQueries[queryIndex].Query
		results, failures := newRetriever().Search(
			cmd.Context(), query, p.SelectedDatabases, appCfg.Search.MaxPerDatabase)

		for _, f := range failures {
			fmt.Fprintf(cmd.ErrOrStderr(), "search failed: %s\n", f)
		}

		if saveTo != "" {
			if err := retriever.WriteResultsFile(saveTo, query, p.SelectedDatabases, results, failures); err != nil {
				return err
			}
			fmt.Printf("Saved %d results to %s\n", len(results), saveTo)
		}

		key := project.LiteralKey
		if normalized {
			key = project.NormalizedKey
		}
		accepted := project.MergeArticles(p, results, key)
		if err := store.Save(p); err != nil {
			return err
		}

		fmt.Printf("Retrieved %d articles, added %d new (%d duplicates).\n",
			len(results), accepted, len(results)-accepted)
		return nil
	},
}

var searchImportCmd = &cobra.Command{
	Use:   "import [results-file]",
	Short: "Merge a previously saved results file into the project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		normalized, _ := cmd.Flags().GetBool("normalized")

		store, p, err := openProject(cmd)
		if err != nil {
			return err
		}
		rf, err := retriever.ReadResultsFile(args[0])
		if err != nil {
			return err
		}

		key := project.LiteralKey
		if normalized {
			key = project.NormalizedKey
		}
		accepted := project.MergeArticles(p, rf.Results, key)
		if err := store.Save(p); err != nil {
			return err
		}

		fmt.Printf("Imported %d articles, added %d new (%d duplicates).\n",
			len(rf.Results), accepted, len(rf.Results)-accepted)
		return nil
	},
}

func init() {
	searchCmd.Flags().Int("query-index", 0, "zero-based index of the project query to run")
	searchCmd.Flags().String("save", "", "also write the raw results to a YAML file")
	searchCmd.Flags().Bool("normalized", false, "match duplicates case- and whitespace-insensitively")
	searchImportCmd.Flags().Bool("normalized", false, "match duplicates case- and whitespace-insensitively")

	searchCmd.AddCommand(searchImportCmd)
	rootCmd.AddCommand(searchCmd)
}
