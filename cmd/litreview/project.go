// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litreview/internal/project"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Create and inspect review projects",
}

var projectNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new empty project file",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		path, err := projectPath(cmd)
		if err != nil {
			return err
		}
		if name == "" {
			return fmt.Errorf("--name is required")
		}

		store := project.NewStore(appLog)
		p, err := store.Create(name, path)
		if err != nil {
			return err
		}
		rememberProject(path)
		fmt.Printf("Created project %q at %s\n", p.Name, p.Path)
		return nil
	},
}

var projectInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show a summary of a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, err := openProject(cmd)
		if err != nil {
			return err
		}
		rememberProject(p.Path)

		fmt.Printf("Project:    %s\n", p.Name)
		fmt.Printf("Path:       %s\n", p.Path)
		fmt.Printf("Created:    %s\n", p.DateCreated.Format("2006-01-02 15:04"))
		fmt.Printf("Modified:   %s\n", p.DateModified.Format("2006-01-02 15:04"))
		fmt.Printf("Questions:  %d\n", len(p.ResearchQuestions))
		fmt.Printf("Queries:    %d\n", len(p.SearchQueries))
		fmt.Printf("Databases:  %d\n", len(p.SelectedDatabases))
		fmt.Printf("Articles:   %d (%d selected)\n", len(p.Articles), len(project.Selected(p)))
		if p.ReviewMethodology != "" {
			fmt.Printf("Methodology: %s\n", p.ReviewMethodology)
		}
		if p.ReviewContent != "" {
			fmt.Printf("Review:     %d characters\n", len(p.ReviewContent))
		}
		return nil
	},
}

var projectRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently opened projects",
	Run: func(cmd *cobra.Command, args []string) {
		if len(appCfg.RecentProjects) == 0 {
			fmt.Println("No recent projects.")
			return
		}
		for _, path := range appCfg.RecentProjects {
			fmt.Println(path)
		}
	},
}

func init() {
	projectNewCmd.Flags().String("name", "", "project name")

	projectCmd.AddCommand(projectNewCmd, projectInfoCmd, projectRecentCmd)
	rootCmd.AddCommand(projectCmd)
}
