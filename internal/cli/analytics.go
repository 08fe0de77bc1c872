package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/jahtz/gopxml/model"
)

var (
	codecOutput     string
	codecLevel      string
	codecIndex      int
	codecStripSpace bool
	codecFreqs      bool
	codecNormalize  string

	regionsOutput string
	regionsLevel  string
	regionsFreqs  bool
	regionsTypes  bool
	regionsCustom bool

	textLevel string
	textIndex int
)

var codecCmd = &cobra.Command{
	Use:   "codec FILES...",
	Short: "Extract the character set from PAGE-XML files",
	Long: `Analyzes the text content of PAGE-XML files and extracts the set of
characters used. Unicode normalization, whitespace removal and frequency
output are optional. Results are printed or saved as CSV.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := textLevelType(codecLevel)
		if err != nil {
			return err
		}
		form, err := normForm(codecNormalize)
		if err != nil {
			return err
		}
		files, err := collectFiles(args)
		if err != nil {
			return err
		}

		counts := make(map[rune]int)
		processed, err := forEachPage(files, func(path string, page *model.Page) error {
			for _, el := range page.FindAll(model.Filter{Types: []model.PageType{level}, Depth: -1}) {
				text, ok := model.GetText(el, codecIndex, model.Unicode)
				if !ok {
					continue
				}
				if codecNormalize != "" {
					text = form.String(text)
				}
				for _, r := range text {
					if codecStripSpace && unicode.IsSpace(r) {
						continue
					}
					counts[r]++
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		rows := sortedRuneRows(counts, codecFreqs)
		if codecOutput != "" {
			header := []string{"character"}
			if codecFreqs {
				header = append(header, "frequency")
			}
			if err := writeCSV(csvTarget(codecOutput, "codec.csv"), header, rows, ';'); err != nil {
				return err
			}
		} else {
			for _, row := range rows {
				fmt.Println(strings.Join(row, ": "))
			}
		}
		summary("Processed %d of %d files, %d distinct characters", processed, len(files), len(counts))
		return nil
	},
}

var regionsCmd = &cobra.Command{
	Use:   "regions FILES...",
	Short: "List the region types found in PAGE-XML files",
	Long: `Analyzes PAGE-XML files and lists the region types found, optionally with
subtypes (the regions' type attribute), frequencies and aggregation per
file, per directory or over the whole run. With --custom, the regions'
custom attribute is inventoried instead of their types.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if regionsLevel != "total" && regionsLevel != "directory" && regionsLevel != "file" {
			return fmt.Errorf("unknown aggregation level %q", regionsLevel)
		}
		if regionsTypes && regionsCustom {
			return fmt.Errorf("--types and --custom are mutually exclusive")
		}
		files, err := collectFiles(args)
		if err != nil {
			return err
		}

		perFile := make(map[string]map[string]int)
		processed, err := forEachPage(files, func(path string, page *model.Page) error {
			counts := make(map[string]int)
			for _, region := range page.Regions() {
				counts[regionKey(region, regionsTypes, regionsCustom)]++
			}
			perFile[path] = counts
			return nil
		})
		if err != nil {
			return err
		}

		csvName := "regions.csv"
		if regionsCustom {
			csvName = "customs.csv"
		}
		header, rows := aggregateRegionRows(perFile, regionsLevel, regionsFreqs)
		if regionsOutput != "" {
			if err := writeCSV(csvTarget(regionsOutput, csvName), header, rows, ','); err != nil {
				return err
			}
		} else {
			fmt.Println(headerStyle.Render(strings.Join(header, ";")))
			for _, row := range rows {
				fmt.Println(strings.Join(row, ";"))
			}
		}
		summary("Processed %d of %d files", processed, len(files))
		return nil
	},
}

var textCmd = &cobra.Command{
	Use:   "text FILES...",
	Short: "Print the text content of PAGE-XML files",
	Long: `Extracts and prints the text of PAGE-XML files at a chosen structural
level, in reading order where one is defined.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := textLevelType(textLevel)
		if err != nil {
			return err
		}
		files, err := collectFiles(args)
		if err != nil {
			return err
		}
		multiple := len(files) > 1
		_, err = forEachPage(files, func(path string, page *model.Page) error {
			if multiple {
				fmt.Println(headerStyle.Render(path))
			}
			page.ApplyReadingOrder()
			for _, el := range page.FindAll(model.Filter{Types: []model.PageType{level}, Depth: -1}) {
				if text, ok := model.GetText(el, textIndex, model.Unicode); ok {
					fmt.Println(text)
				}
			}
			return nil
		})
		return err
	},
}

func init() {
	codecCmd.Flags().StringVarP(&codecOutput, "output", "o", "", "CSV file or directory for the results (default: stdout)")
	codecCmd.Flags().StringVarP(&codecLevel, "level", "l", "TextLine", "PAGE level to extract text from (TextRegion, TextLine, Word, Glyph)")
	codecCmd.Flags().IntVarP(&codecIndex, "index", "i", -1, "Only consider TextEquiv elements with this index")
	codecCmd.Flags().BoolVarP(&codecStripSpace, "remove-whitespace", "w", false, "Remove whitespace before analyzing text")
	codecCmd.Flags().BoolVarP(&codecFreqs, "frequencies", "f", false, "Also output character frequencies")
	codecCmd.Flags().StringVarP(&codecNormalize, "normalize", "n", "", "Normalize unicode before analyzing (NFC, NFD, NFKC, NFKD)")

	regionsCmd.Flags().StringVarP(&regionsOutput, "output", "o", "", "CSV file or directory for the results (default: stdout)")
	regionsCmd.Flags().StringVarP(&regionsLevel, "level", "l", "total", "Aggregation level (total, directory, file)")
	regionsCmd.Flags().BoolVarP(&regionsFreqs, "frequencies", "f", false, "Also output region frequencies")
	regionsCmd.Flags().BoolVarP(&regionsTypes, "types", "t", false, "Include subtypes as 'PageType.type'")
	regionsCmd.Flags().BoolVarP(&regionsCustom, "custom", "c", false, "Inventory the regions' custom attribute instead of their types")

	textCmd.Flags().StringVarP(&textLevel, "level", "l", "TextLine", "PAGE level to extract text from (TextRegion, TextLine, Word, Glyph)")
	textCmd.Flags().IntVarP(&textIndex, "index", "i", -1, "Only consider TextEquiv elements with this index")

	rootCmd.AddCommand(codecCmd, regionsCmd, textCmd)
}

// textLevelType restricts the --level flag to text-bearing PAGE levels.
func textLevelType(s string) (model.PageType, error) {
	switch s {
	case "TextRegion", "TextLine", "Word", "Glyph":
		return model.PageType(s), nil
	default:
		return "", fmt.Errorf("unknown text level %q (expected TextRegion, TextLine, Word or Glyph)", s)
	}
}

// normForm resolves a normalization form name; "" disables normalization.
func normForm(s string) (norm.Form, error) {
	switch s {
	case "", "NFC":
		return norm.NFC, nil
	case "NFD":
		return norm.NFD, nil
	case "NFKC":
		return norm.NFKC, nil
	case "NFKD":
		return norm.NFKD, nil
	default:
		return norm.NFC, fmt.Errorf("unknown normalization form %q", s)
	}
}

// regionKey computes a region's inventory key: its type, optionally extended
// with the type attribute subtype, or its custom attribute value ("None" when
// absent) in custom mode.
func regionKey(region *model.Element, withTypes, withCustom bool) string {
	if withCustom {
		if custom, ok := region.Attribute("custom"); ok {
			return custom
		}
		return "None"
	}
	key := region.PageType().String()
	if withTypes {
		if sub, ok := region.Attribute("type"); ok {
			key += "." + sub
		}
	}
	return key
}

// sortedRuneRows orders characters by descending frequency, then by value.
func sortedRuneRows(counts map[rune]int, withFreqs bool) [][]string {
	runes := make([]rune, 0, len(counts))
	for r := range counts {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool {
		if counts[runes[i]] != counts[runes[j]] {
			return counts[runes[i]] > counts[runes[j]]
		}
		return runes[i] < runes[j]
	})
	rows := make([][]string, 0, len(runes))
	for _, r := range runes {
		row := []string{string(r)}
		if withFreqs {
			row = append(row, fmt.Sprintf("%d", counts[r]))
		}
		rows = append(rows, row)
	}
	return rows
}

// aggregateRegionRows builds the output table for the regions command.
func aggregateRegionRows(perFile map[string]map[string]int, level string, withFreqs bool) ([]string, [][]string) {
	if level == "total" {
		total := make(map[string]int)
		for _, counts := range perFile {
			for k, v := range counts {
				total[k] += v
			}
		}
		keys := sortedCountKeys(total, withFreqs)
		header := []string{"type"}
		if withFreqs {
			header = append(header, "frequency")
		}
		rows := make([][]string, 0, len(keys))
		for _, k := range keys {
			row := []string{k}
			if withFreqs {
				row = append(row, fmt.Sprintf("%d", total[k]))
			}
			rows = append(rows, row)
		}
		return header, rows
	}

	groups := make(map[string]map[string]int)
	for path, counts := range perFile {
		name := path
		if level == "directory" {
			name = filepath.Dir(path)
		}
		group, ok := groups[name]
		if !ok {
			group = make(map[string]int)
			groups[name] = group
		}
		for k, v := range counts {
			group[k] += v
		}
	}

	typeSet := make(map[string]struct{})
	for _, counts := range groups {
		for k := range counts {
			typeSet[k] = struct{}{}
		}
	}
	types := make([]string, 0, len(typeSet))
	for k := range typeSet {
		types = append(types, k)
	}
	sort.Strings(types)

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	header := append([]string{level}, types...)
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		row := []string{name}
		for _, t := range types {
			c := groups[name][t]
			switch {
			case withFreqs:
				row = append(row, fmt.Sprintf("%d", c))
			case c > 0:
				row = append(row, "x")
			default:
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}
	return header, rows
}

// sortedCountKeys orders keys by descending count when frequencies are
// requested, alphabetically otherwise.
func sortedCountKeys(counts map[string]int, byFreq bool) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if byFreq && counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

// csvTarget resolves an --output value: directories get a default filename.
func csvTarget(output, defaultName string) string {
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, defaultName)
	}
	return output
}
