// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litreview/internal/project"
	"github.com/pdiddy/litreview/pkg/types"
)

var queriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "Manage and generate database search queries",
}

var queriesGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate search queries from the research questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, p, err := openProject(cmd)
		if err != nil {
			return err
		}
		if len(p.ResearchQuestions) == 0 {
			return fmt.Errorf("project has no research questions; add some with 'litreview questions add'")
		}

		queries, err := newAssistant().GenerateSearchQueries(cmd.Context(), p.ResearchQuestions)
		if err != nil {
			return err
		}
		if len(queries) == 0 {
			fmt.Println("The model returned no usable queries; try again or add one manually.")
			return nil
		}

		for _, q := range queries {
			project.AddQuery(p, q)
		}
		if err := store.Save(p); err != nil {
			return err
		}

		fmt.Printf("Added %d queries:\n", len(queries))
		for _, q := range queries {
			fmt.Printf("  %s\n    %s\n", q.Query, q.Explanation)
		}
		return nil
	},
}

var queriesAddCmd = &cobra.Command{
	Use:   "add [query]",
	Short: "Add a search query manually",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		explanation, _ := cmd.Flags().GetString("explanation")
		store, p, err := openProject(cmd)
		if err != nil {
			return err
		}
		project.AddQuery(p, types.QueryRecord{
			Query:       strings.Join(args, " "),
			Explanation: explanation,
		})
		return store.Save(p)
	},
}

var queriesRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a search query by index",
	RunE: func(cmd *cobra.Command, args []string) error {
		index, _ := cmd.Flags().GetInt("index")
		store, p, err := openProject(cmd)
		if err != nil {
			return err
		}
		if err := project.RemoveQuery(p, index); err != nil {
			return err
		}
		return store.Save(p)
	},
}

var queriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the search queries",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, err := openProject(cmd)
		if err != nil {
			return err
		}
		for i, q := range p.SearchQueries {
			fmt.Printf("%d. %s\n", i, q.Query)
			if q.Explanation != "" {
				fmt.Printf("   %s\n", q.Explanation)
			}
		}
		return nil
	},
}

func init() {
	queriesAddCmd.Flags().String("explanation", "", "why this query covers the questions")
	queriesRemoveCmd.Flags().Int("index", -1, "zero-based query index")

	queriesCmd.AddCommand(queriesGenerateCmd, queriesAddCmd, queriesRemoveCmd, queriesListCmd)
	rootCmd.AddCommand(queriesCmd)
}
