// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litreview/internal/conclusion"
	"github.com/pdiddy/litreview/internal/fulltext"
	"github.com/pdiddy/litreview/internal/project"
	"github.com/pdiddy/litreview/pkg/types"
)

// applyExtractedText stores PDF text on a record and pulls out the
// conclusion when one is recognizable.
func applyExtractedText(a *types.ArticleRecord, text, path string) {
	a.FullText = text
	a.LocalFilePath = path
	if body, ok := conclusion.Extract(text); ok {
		a.Conclusion = body
	}
}

var articlesCmd = &cobra.Command{
	Use:   "articles",
	Short: "Inspect and curate the project's article pool",
}

var articlesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the article pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		selectedOnly, _ := cmd.Flags().GetBool("selected")

		_, p, err := openProject(cmd)
		if err != nil {
			return err
		}
		for i, a := range p.Articles {
			if selectedOnly && !a.Selected {
				continue
			}
			mark := " "
			if a.Selected {
				mark = "x"
			}
			fmt.Printf("[%s] %d. %s (%s, %s)\n", mark, i, a.Title, a.Journal, a.Year)
			if a.DOI != "" {
				fmt.Printf("       doi: %s\n", a.DOI)
			}
			if a.Notes != "" {
				fmt.Printf("       notes: %s\n", a.Notes)
			}
		}
		return nil
	},
}

var articlesSelectCmd = &cobra.Command{
	Use:   "select [doi-or-title]",
	Short: "Mark an article for inclusion in the review",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setSelection(cmd, strings.Join(args, " "), true)
	},
}

var articlesDeselectCmd = &cobra.Command{
	Use:   "deselect [doi-or-title]",
	Short: "Unmark an article",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setSelection(cmd, strings.Join(args, " "), false)
	},
}

func setSelection(cmd *cobra.Command, ref string, selected bool) error {
	store, p, err := openProject(cmd)
	if err != nil {
		return err
	}
	if err := project.SetSelected(p, ref, selected); err != nil {
		return err
	}
	return store.Save(p)
}

var articlesNoteCmd = &cobra.Command{
	Use:   "note [doi-or-title]",
	Short: "Attach notes to an article",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, _ := cmd.Flags().GetString("text")
		store, p, err := openProject(cmd)
		if err != nil {
			return err
		}
		if err := project.SetNotes(p, strings.Join(args, " "), notes); err != nil {
			return err
		}
		return store.Save(p)
	},
}

var articlesFetchTextCmd = &cobra.Command{
	Use:   "fetch-text [doi-or-title]",
	Short: "Retrieve an article's full text and extract its conclusion",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, p, err := openProject(cmd)
		if err != nil {
			return err
		}
		ref := strings.Join(args, " ")
		a := project.FindArticle(p, ref)
		if a == nil {
			return fmt.Errorf("no article matches %q", ref)
		}
		if err := newRetriever().FetchFullText(cmd.Context(), a); err != nil {
			return err
		}
		if err := store.Save(p); err != nil {
			return err
		}

		fmt.Printf("Retrieved %d characters of full text.\n", len(a.FullText))
		if a.Conclusion != "" {
			fmt.Printf("Conclusion:\n%s\n", a.Conclusion)
		} else {
			fmt.Println("No conclusion section found.")
		}
		return nil
	},
}

var articlesImportPDFCmd = &cobra.Command{
	Use:   "import-pdf [pdf-path]",
	Short: "Attach a local PDF's text to an article, or add a new one",
	Long: `Extracts text from a local PDF. With --article the text becomes the full
text of that existing pool record; without it a new record is created using
the sniffed title.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, _ := cmd.Flags().GetString("article")
		path := args[0]

		store, p, err := openProject(cmd)
		if err != nil {
			return err
		}

		text, meta, err := fulltext.ExtractPDF(path)
		if err != nil {
			return err
		}

		if ref != "" {
			a := project.FindArticle(p, ref)
			if a == nil {
				return fmt.Errorf("no article matches %q", ref)
			}
			applyExtractedText(a, text, path)
			if err := store.Save(p); err != nil {
				return err
			}
			fmt.Printf("Attached %d pages of text to %q.\n", meta.Pages, a.Title)
			return nil
		}

		title := meta.Title
		if title == "" {
			title = path
		}
		record := types.ArticleRecord{Title: title, SourceDB: "local"}
		applyExtractedText(&record, text, path)

		accepted := project.MergeArticles(p, []types.ArticleRecord{record}, project.LiteralKey)
		if err := store.Save(p); err != nil {
			return err
		}
		if accepted == 0 {
			fmt.Printf("An article titled %q is already in the pool; nothing added.\n", title)
			return nil
		}
		fmt.Printf("Added %q (%d pages).\n", title, meta.Pages)
		return nil
	},
}

func init() {
	articlesListCmd.Flags().Bool("selected", false, "show only selected articles")
	articlesNoteCmd.Flags().String("text", "", "note text (empty clears the notes)")
	articlesImportPDFCmd.Flags().String("article", "", "DOI or exact title of an existing article to attach to")

	articlesCmd.AddCommand(articlesListCmd, articlesSelectCmd, articlesDeselectCmd,
		articlesNoteCmd, articlesFetchTextCmd, articlesImportPDFCmd)
	rootCmd.AddCommand(articlesCmd)
}
