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
	regOutput    string
	regSchema    string
	regLevel     string
	regIndex     int
	regPlaintext bool
	regTextRules []string
	regTypeRules []string
)

// regionRule retypes or deletes regions matched by type and optional
// subtype. A nil target deletes the region.
type regionRule struct {
	target  model.PageType
	subtype string
	remove  bool
}

var regularizeCmd = &cobra.Command{
	Use:   "regularize FILES...",
	Short: "Apply replacement rules to PAGE-XML files",
	Long: `Applies character replacement rules to text elements and retyping or
deletion rules to regions, then writes the files back (in place, or into the
--output directory).

Text rules are SOURCE=TARGET substring replacements. Region rules have the
form SOURCE:TARGET where SOURCE and TARGET are region types with an optional
subtype (TextRegion.paragraph); an empty TARGET deletes matching regions.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(regTextRules) == 0 && len(regTypeRules) == 0 {
			return fmt.Errorf("no rules given (use --rule or --region-rule)")
		}
		level, err := textLevelType(regLevel)
		if err != nil {
			return err
		}
		textRules, err := parseTextRules(regTextRules)
		if err != nil {
			return err
		}
		typeRules, err := parseRegionRules(regTypeRules)
		if err != nil {
			return err
		}
		files, err := collectFiles(args)
		if err != nil {
			return err
		}
		if regOutput != "" {
			if err := os.MkdirAll(regOutput, 0o755); err != nil {
				return err
			}
		}

		replacements, changed, deleted := 0, 0, 0
		processed, err := forEachPage(files, func(path string, page *model.Page) error {
			replacements += applyTextRules(page, level, textRules)
			c, d := applyRegionRules(page, typeRules)
			changed += c
			deleted += d
			return codec.WriteFile(outputPath(path, regOutput), page, regSchema)
		})
		if err != nil {
			return err
		}
		summary("Processed %d of %d files: %d replacements, %d regions changed, %d regions deleted",
			processed, len(files), replacements, changed, deleted)
		return nil
	},
}

func init() {
	regularizeCmd.Flags().StringVarP(&regOutput, "output", "o", "", "Directory for the modified files (default: overwrite in place)")
	regularizeCmd.Flags().StringVar(&regSchema, "schema", codec.DefaultSchema, "Schema version for the output")
	regularizeCmd.Flags().StringVarP(&regLevel, "level", "l", "TextLine", "PAGE level for text rules (TextRegion, TextLine, Word, Glyph)")
	regularizeCmd.Flags().IntVarP(&regIndex, "index", "i", -1, "Only consider TextEquiv elements with this index")
	regularizeCmd.Flags().BoolVarP(&regPlaintext, "plaintext", "p", false, "Replace in PlainText elements instead of Unicode")
	regularizeCmd.Flags().StringArrayVarP(&regTextRules, "rule", "r", nil, "Text replacement rule SOURCE=TARGET (repeatable)")
	regularizeCmd.Flags().StringArrayVar(&regTypeRules, "region-rule", nil, "Region rule SOURCE:TARGET (repeatable)")
	rootCmd.AddCommand(regularizeCmd)
}

// parseTextRules splits SOURCE=TARGET pairs.
func parseTextRules(raw []string) ([][2]string, error) {
	rules := make([][2]string, 0, len(raw))
	for _, r := range raw {
		src, dst, ok := strings.Cut(r, "=")
		if !ok || src == "" {
			return nil, fmt.Errorf("invalid text rule %q (expected SOURCE=TARGET)", r)
		}
		rules = append(rules, [2]string{src, dst})
	}
	return rules, nil
}

// parseRegionRules parses SOURCE:TARGET pairs keyed by the source
// "Type.subtype" spec. Only region types are allowed on either side.
func parseRegionRules(raw []string) (map[string]regionRule, error) {
	rules := make(map[string]regionRule, len(raw))
	for _, r := range raw {
		src, dst, ok := strings.Cut(r, ":")
		if !ok || src == "" {
			return nil, fmt.Errorf("invalid region rule %q (expected SOURCE:TARGET)", r)
		}
		srcType, _, _ := strings.Cut(src, ".")
		if pt, err := model.ParsePageType(srcType); err != nil || !pt.IsRegion() {
			return nil, fmt.Errorf("invalid region rule source %q", src)
		}
		if _, dup := rules[src]; dup {
			return nil, fmt.Errorf("region rule source %q declared twice", src)
		}
		if dst == "" {
			rules[src] = regionRule{remove: true}
			continue
		}
		dstType, subtype, _ := strings.Cut(dst, ".")
		pt, err := model.ParsePageType(dstType)
		if err != nil || !pt.IsRegion() {
			return nil, fmt.Errorf("invalid region rule target %q", dst)
		}
		rules[src] = regionRule{target: pt, subtype: subtype}
	}
	return rules, nil
}

// applyTextRules runs the substring replacements below every element of the
// requested level and returns the replacement count.
func applyTextRules(page *model.Page, level model.PageType, rules [][2]string) int {
	if len(rules) == 0 {
		return 0
	}
	source := model.Unicode
	if regPlaintext {
		source = model.PlainText
	}
	count := 0
	for _, el := range page.FindAll(model.Filter{Types: []model.PageType{level}, Depth: -1}) {
		equivFilter := model.Filter{Types: []model.PageType{model.TextEquiv}}
		if regIndex >= 0 {
			equivFilter.Attributes = map[string]string{"index": fmt.Sprintf("%d", regIndex)}
		}
		for _, te := range el.FindAll(equivFilter) {
			for _, leaf := range te.FindAll(model.Filter{Types: []model.PageType{source}}) {
				text, ok := leaf.Text()
				if !ok {
					continue
				}
				for _, rule := range rules {
					if n := strings.Count(text, rule[0]); n > 0 {
						count += n
						text = strings.ReplaceAll(text, rule[0], rule[1])
					}
				}
				leaf.SetText(text)
			}
		}
	}
	return count
}

// applyRegionRules retypes or deletes top-level regions per the rule set and
// returns the changed and deleted counts.
func applyRegionRules(page *model.Page, rules map[string]regionRule) (changed, deleted int) {
	if len(rules) == 0 {
		return 0, 0
	}
	for _, region := range page.Regions() {
		key := region.PageType().String()
		if sub, ok := region.Attribute("type"); ok {
			key = key + "." + sub
		}
		rule, ok := rules[key]
		if !ok {
			// Fall back to the bare type for rules without a subtype.
			rule, ok = rules[region.PageType().String()]
		}
		if !ok {
			continue
		}
		if rule.remove {
			page.Delete(region)
			deleted++
			continue
		}
		if err := region.SetPageType(rule.target); err != nil {
			continue
		}
		if rule.subtype != "" {
			region.SetAttribute("type", rule.subtype)
		} else {
			region.RemoveAttribute("type")
		}
		changed++
	}
	return changed, deleted
}
