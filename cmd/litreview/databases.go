// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litreview/internal/project"
)

var databasesCmd = &cobra.Command{
	Use:   "databases",
	Short: "Choose which publication databases to search",
}

var databasesSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Ask the model which databases fit the project",
	RunE: func(cmd *cobra.Command, args []string) error {
		apply, _ := cmd.Flags().GetBool("apply")
		store, p, err := openProject(cmd)
		if err != nil {
			return err
		}
		if len(p.ResearchQuestions) == 0 {
			return fmt.Errorf("project has no research questions; add some with 'litreview questions add'")
		}

		suggestions, err := newAssistant().SuggestDatabases(
			cmd.Context(), p.ResearchQuestions, p.SearchQueries, appCfg.DatabaseNames())
		if err != nil {
			return err
		}
		if len(suggestions) == 0 {
			fmt.Println("The model returned no usable suggestions.")
			return nil
		}

		for _, s := range suggestions {
			fmt.Printf("%s\n  %s\n", s.Database, s.Reason)
		}

		if apply {
			project.ApplySuggestions(p, suggestions)
			if err := store.Save(p); err != nil {
				return err
			}
			fmt.Printf("Selected %d databases.\n", len(suggestions))
		}
		return nil
	},
}

var databasesSetCmd = &cobra.Command{
	Use:   "set [name]",
	Short: "Select or deselect a database by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deselect, _ := cmd.Flags().GetBool("deselect")
		name := args[0]

		known := false
		for _, db := range appCfg.DatabaseNames() {
			if db == name {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown database %q; see 'litreview databases list'", name)
		}

		store, p, err := openProject(cmd)
		if err != nil {
			return err
		}
		project.SetDatabaseSelected(p, name, !deselect)
		return store.Save(p)
	},
}

var databasesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available databases and the project's selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, err := openProject(cmd)
		if err != nil {
			return err
		}

		selected := make(map[string]bool, len(p.SelectedDatabases))
		for _, name := range p.SelectedDatabases {
			selected[name] = true
		}
		for _, db := range appCfg.Databases {
			mark := " "
			if selected[db.Name] {
				mark = "x"
			}
			fmt.Printf("[%s] %s\n", mark, db.Name)
		}
		return nil
	},
}

func init() {
	databasesSuggestCmd.Flags().Bool("apply", false, "replace the project's selection with the suggestions")
	databasesSetCmd.Flags().Bool("deselect", false, "remove the database from the selection")

	databasesCmd.AddCommand(databasesSuggestCmd, databasesSetCmd, databasesListCmd)
	rootCmd.AddCommand(databasesCmd)
}
