package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oleksiybondar/eqlgo/jsonnode"
	"github.com/oleksiybondar/eqlgo/slot"
)

var resolveCollection string

// ruleSpec is the JSON form of a slot policy rule.
type ruleSpec struct {
	Value  any    `json:"value"`
	Target string `json:"target"`
	Kind   string `json:"kind"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <rules.json> <document.json>",
	Short: "Resolve slot policy rules across a JSON collection",
	Long: `resolve loads a rule list and runs slot resolution for every position
of a collection. The document root must be an array, or an object whose
--collection key holds one. Key rules never match here: the CLI has no
key resolver.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rules, err := loadRules(args[0])
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("reading document: %w", err)
		}
		doc, err := jsonnode.Parse(data)
		if err != nil {
			return err
		}

		items, ok := doc.Items()
		if !ok && resolveCollection != "" {
			items, ok = doc.Collection(resolveCollection)
		}
		if !ok {
			return fmt.Errorf("document does not contain a collection")
		}

		resolver := slot.NewResolver(rules, nil)
		for i, item := range items {
			target, matched, err := resolver.Resolve(i, item, len(items))
			if err != nil {
				return err
			}
			if matched {
				fmt.Printf("%d\t%v\n", i, target)
			} else {
				fmt.Printf("%d\t-\n", i)
			}
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveCollection, "collection", "", "collection key when the document root is an object")
	rootCmd.AddCommand(resolveCmd)
}

func loadRules(path string) ([]slot.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}
	var specs []ruleSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("decoding rules: %w", err)
	}

	rules := make([]slot.Rule, 0, len(specs))
	for i, spec := range specs {
		value := spec.Value
		if f, ok := value.(float64); ok {
			value = int(f)
		}

		var (
			rule slot.Rule
			err  error
		)
		if spec.Kind == "" {
			rule, err = slot.NewRule(value, spec.Target)
		} else {
			kind, kerr := parseKind(spec.Kind)
			if kerr != nil {
				return nil, fmt.Errorf("rule %d: %w", i, kerr)
			}
			rule, err = slot.NewRule(value, spec.Target, kind)
		}
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		log.Debug().Stringer("rule", rule).Msg("loaded rule")
		rules = append(rules, rule)
	}
	return rules, nil
}

func parseKind(s string) (slot.Kind, error) {
	switch s {
	case "index":
		return slot.KindIndex, nil
	case "predicate":
		return slot.KindPredicate, nil
	case "key":
		return slot.KindKey, nil
	case "eql":
		return slot.KindEQL, nil
	default:
		return slot.KindUnspecified, fmt.Errorf("unknown rule kind %q", s)
	}
}
