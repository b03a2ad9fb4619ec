// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litreview/internal/library"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Index projects into the shared article library and search it",
}

var libraryIndexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index the project's article pool into the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, err := openProject(cmd)
		if err != nil {
			return err
		}

		store, err := library.NewStore(appCfg.Library)
		if err != nil {
			return err
		}
		defer store.Close()

		count, err := store.Index(cmd.Context(), p)
		if err != nil {
			return err
		}
		fmt.Printf("Indexed %d articles from %s\n", count, p.Path)
		return nil
	},
}

var librarySearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Full-text search across every indexed project",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		max, _ := cmd.Flags().GetInt("max")

		store, err := library.NewStore(appCfg.Library)
		if err != nil {
			return err
		}
		defer store.Close()

		hits, err := store.Search(cmd.Context(), strings.Join(args, " "), max)
		if err != nil {
			return err
		}
		if len(hits) == 0 {
			fmt.Println("No matches.")
			return nil
		}

		for _, h := range hits {
			fmt.Printf("%s (%s, %s)\n", h.Title, h.Journal, h.Year)
			if h.DOI != "" {
				fmt.Printf("  doi: %s\n", h.DOI)
			}
			fmt.Printf("  project: %s\n", h.ProjectPath)
			fmt.Printf("  %s\n", h.Snippet)
		}
		return nil
	},
}

func init() {
	librarySearchCmd.Flags().Int("max", 0, "maximum hits (0 uses the configured default)")

	libraryCmd.AddCommand(libraryIndexCmd, librarySearchCmd)
	rootCmd.AddCommand(libraryCmd)
}
