package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jahtz/gopxml/codec"
	"github.com/jahtz/gopxml/model"
)

var (
	removeOutput string
	removeSchema string
	removeType   string
	removeAttrs  []string
)

var removeCmd = &cobra.Command{
	Use:   "remove FILES...",
	Short: "Remove elements from PAGE-XML files",
	Long: `Removes elements matched by type and optional attribute values at any depth
of the tree, then writes the files back (in place, or into the --output
directory). Without --type, all elements are removed and attribute filters
are ignored.

Example:

  gopxml remove page.xml --type TextLine --attribute production=printed`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var pt model.PageType
		if removeType != "" {
			var err error
			if pt, err = model.ParsePageType(removeType); err != nil {
				return err
			}
		}
		attrs, err := parseAttributePairs(removeAttrs)
		if err != nil {
			return err
		}
		files, err := collectFiles(args)
		if err != nil {
			return err
		}
		if removeOutput != "" {
			if err := os.MkdirAll(removeOutput, 0o755); err != nil {
				return err
			}
		}

		removed := 0
		processed, err := forEachPage(files, func(path string, page *model.Page) error {
			removed += removeElements(page, pt, attrs)
			return codec.WriteFile(outputPath(path, removeOutput), page, removeSchema)
		})
		if err != nil {
			return err
		}
		summary("Processed %d of %d files: %d elements removed", processed, len(files), removed)
		return nil
	},
}

func init() {
	removeCmd.Flags().StringVarP(&removeOutput, "output", "o", "", "Directory for the modified files (default: overwrite in place)")
	removeCmd.Flags().StringVar(&removeSchema, "schema", codec.DefaultSchema, "Schema version for the output")
	removeCmd.Flags().StringVarP(&removeType, "type", "t", "", "Type of the elements to remove (default: remove all elements)")
	removeCmd.Flags().StringArrayVarP(&removeAttrs, "attribute", "a", nil, "Only remove elements carrying this KEY=VALUE attribute (repeatable)")
	rootCmd.AddCommand(removeCmd)
}

// parseAttributePairs splits KEY=VALUE pairs into an attribute filter map.
func parseAttributePairs(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	attrs := make(map[string]string, len(raw))
	for _, r := range raw {
		key, value, ok := strings.Cut(r, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid attribute filter %q (expected KEY=VALUE)", r)
		}
		attrs[key] = value
	}
	return attrs, nil
}

// removeElements deletes every element of the given type carrying the attrs,
// at any depth, and returns the removal count. Top-level elements leave the
// reading order as well. An empty type removes everything, ignoring attrs.
func removeElements(page *model.Page, pt model.PageType, attrs map[string]string) int {
	if pt == "" {
		removed := page.Len()
		page.Clear(false)
		return removed
	}
	removed := 0
	filter := model.Filter{Types: []model.PageType{pt}, Attributes: attrs, Depth: -1}
	for _, el := range page.FindAll(filter) {
		switch parent := el.Parent().(type) {
		case *model.Page:
			if parent.Delete(el) != nil {
				removed++
			}
		case *model.Element:
			if parent.Delete(el) != nil {
				removed++
			}
		}
	}
	return removed
}
