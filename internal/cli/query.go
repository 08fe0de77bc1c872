package cli

import (
	"fmt"
	"os"

	"github.com/antchfx/xmlquery"
	"github.com/spf13/cobra"
)

var queryExpr string

var queryCmd = &cobra.Command{
	Use:   "query FILES...",
	Short: "Run an XPath expression against PAGE-XML files",
	Long: `Evaluates an XPath expression against the raw XML of PAGE files and prints
the matching nodes. This works on the document as stored, without the typed
model, so it can reach elements the model skips.

Example:

  gopxml query page.xml -x "//TextLine[@id='l1']/TextEquiv/Unicode"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if queryExpr == "" {
			return fmt.Errorf("no XPath expression given (use --xpath)")
		}
		files, err := collectFiles(args)
		if err != nil {
			return err
		}
		matches := 0
		for _, path := range files {
			f, err := os.Open(path)
			if err != nil {
				fmt.Fprintln(os.Stderr, failStyle.Render(fmt.Sprintf("skipping %s: %v", path, err)))
				continue
			}
			doc, err := xmlquery.Parse(f)
			f.Close()
			if err != nil {
				fmt.Fprintln(os.Stderr, failStyle.Render(fmt.Sprintf("skipping %s: %v", path, err)))
				continue
			}
			nodes, err := xmlquery.QueryAll(doc, queryExpr)
			if err != nil {
				return fmt.Errorf("invalid XPath %q: %w", queryExpr, err)
			}
			if len(nodes) == 0 {
				continue
			}
			fmt.Println(headerStyle.Render(path))
			for _, node := range nodes {
				fmt.Println(node.OutputXML(true))
			}
			matches += len(nodes)
		}
		summary("%d matches in %d files", matches, len(files))
		return nil
	},
}

func init() {
	queryCmd.Flags().StringVarP(&queryExpr, "xpath", "x", "", "XPath expression to evaluate")
	rootCmd.AddCommand(queryCmd)
}
