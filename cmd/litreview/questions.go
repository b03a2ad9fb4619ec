// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litreview/internal/project"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Manage the project's research questions",
}

var questionsAddCmd = &cobra.Command{
	Use:   "add [question]",
	Short: "Add a research question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, p, err := openProject(cmd)
		if err != nil {
			return err
		}
		project.AddQuestion(p, strings.Join(args, " "))
		return store.Save(p)
	},
}

var questionsRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a research question by index",
	RunE: func(cmd *cobra.Command, args []string) error {
		index, _ := cmd.Flags().GetInt("index")
		store, p, err := openProject(cmd)
		if err != nil {
			return err
		}
		if err := project.RemoveQuestion(p, index); err != nil {
			return err
		}
		return store.Save(p)
	},
}

var questionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the research questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, err := openProject(cmd)
		if err != nil {
			return err
		}
		for i, q := range p.ResearchQuestions {
			fmt.Printf("%d. %s\n", i, q)
		}
		return nil
	},
}

func init() {
	questionsRemoveCmd.Flags().Int("index", -1, "zero-based question index")

	questionsCmd.AddCommand(questionsAddCmd, questionsRemoveCmd, questionsListCmd)
	rootCmd.AddCommand(questionsCmd)
}
