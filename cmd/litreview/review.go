// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litreview/internal/project"
	"github.com/pdiddy/litreview/internal/review"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Generate and refine the literature review",
}

var reviewGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the review from the selected articles",
	RunE: func(cmd *cobra.Command, args []string) error {
		methodology, _ := cmd.Flags().GetString("methodology")

		store, p, err := openProject(cmd)
		if err != nil {
			return err
		}
		if methodology == "" {
			methodology = p.ReviewMethodology
		}
		if methodology == "" {
			return fmt.Errorf("--methodology is required (one of: %s)",
				strings.Join(appCfg.Methodologies, ", "))
		}

		selected := project.Selected(p)
		content, err := newAssistant().GenerateReview(
			cmd.Context(), p.ResearchQuestions, selected, methodology)
		if err != nil {
			return err
		}

		p.ReviewMethodology = methodology
		p.ReviewContent = content
		if err := store.Save(p); err != nil {
			return err
		}

		fmt.Printf("Generated a %d-character review from %d articles.\n", len(content), len(selected))
		return nil
	},
}

var reviewExpandCmd = &cobra.Command{
	Use:   "expand [section-title]",
	Short: "Rewrite one review section with more depth",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, p, err := openProject(cmd)
		if err != nil {
			return err
		}
		if p.ReviewContent == "" {
			return fmt.Errorf("project has no review yet; run 'litreview review generate'")
		}

		title := strings.Join(args, " ")
		body, ok := review.SectionBody(p.ReviewContent, title)
		if !ok {
			return fmt.Errorf("no section titled %q in the review", title)
		}

		expanded, err := newAssistant().ExpandSection(cmd.Context(), title, body)
		if err != nil {
			return err
		}

		p.ReviewContent = review.ReplaceSection(p.ReviewContent, title, expanded)
		if err := store.Save(p); err != nil {
			return err
		}

		fmt.Printf("Expanded %q from %d to %d characters.\n", title, len(body), len(expanded))
		return nil
	},
}

var reviewShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the review content",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, err := openProject(cmd)
		if err != nil {
			return err
		}
		fmt.Println(p.ReviewContent)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [output-path]",
	Short: "Export the review as DOCX, plain text, or markdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatArg, _ := cmd.Flags().GetString("format")
		format, err := review.ParseFormat(formatArg)
		if err != nil {
			return err
		}

		_, p, err := openProject(cmd)
		if err != nil {
			return err
		}
		if p.ReviewContent == "" {
			return fmt.Errorf("project has no review yet; run 'litreview review generate'")
		}

		if err := review.Export(p.ReviewContent, args[0], format); err != nil {
			return err
		}
		fmt.Printf("Exported %s review to %s\n", format, args[0])
		return nil
	},
}

func init() {
	reviewGenerateCmd.Flags().String("methodology", "", "review methodology (see config)")
	exportCmd.Flags().String("format", "docx", "export format: docx, text, or markdown")

	reviewCmd.AddCommand(reviewGenerateCmd, reviewExpandCmd, reviewShowCmd)
	rootCmd.AddCommand(reviewCmd, exportCmd)
}
