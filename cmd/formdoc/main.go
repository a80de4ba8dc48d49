// Command formdoc inspects and migrates saved Formwright documents
// outside the app: CI can validate committed templates, and legacy
// single-page exports can be rewritten to the multipage format.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chazu/formwright/pkg/document"
	"github.com/chazu/formwright/pkg/form"
)

func main() {
	root := &cobra.Command{
		Use:           "formdoc",
		Short:         "Validate, inspect and migrate Formwright documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(validateCmd(), inspectCmd(), migrateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "formdoc:", err)
		os.Exit(1)
	}
}

func loadDocument(path string) (*document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return document.Import(string(data))
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Parse a document and check its structural invariants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			bad := 0
			for i, page := range doc.Pages {
				for _, v := range form.Check(page.Components) {
					fmt.Fprintf(cmd.OutOrStdout(), "page %d: %s\n", i+1, v.Error())
					bad++
				}
			}
			if bad > 0 {
				return fmt.Errorf("%d violation(s)", bad)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d page(s), version %s\n", len(doc.Pages), doc.Version)
			return nil
		},
	}
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the component tree of every page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			for i, page := range doc.Pages {
				fmt.Fprintf(cmd.OutOrStdout(), "page %d: %s (%s)\n", i+1, page.Title, page.ID)
				printTree(cmd, page.Components, 1)
			}
			return nil
		},
	}
}

func printTree(cmd *cobra.Command, list form.Tree, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, c := range list {
		label := c.Label
		if label == "" {
			label = "-"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s%s %s (%s)\n", indent, c.Kind, label, c.ID)
		printTree(cmd, c.Children, depth+1)
	}
}

func migrateCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "migrate <file>",
		Short: "Rewrite a legacy single-array document as multipage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			text, err := document.Export(doc.TemplateName, doc.Pages)
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}
			return os.WriteFile(out, []byte(text+"\n"), 0o644)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write to file instead of stdout")
	return cmd
}
