package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tmorrison/skillcheck/internal/errors"
	skillvalidator "github.com/tmorrison/skillcheck/internal/skill/validator"
)

// rulesFormat holds the value of the --format flag.
var rulesFormat string

func init() {
	rulesCmd.Flags().StringVarP(&rulesFormat, "format", "f", "yaml",
		"output format: yaml, json, toml")
	rootCmd.AddCommand(rulesCmd)
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the active validation rule tables",
	Long: `Print the rule tables applied by validate: length limits, the
advisory body line threshold, reserved words, and the accepted
"when to use" guidance phrases.`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func runRules(cmd *cobra.Command, _ []string) error {
	rules := skillvalidator.DefaultRules()

	var (
		out []byte
		err error
	)
	switch rulesFormat {
	case "yaml":
		out, err = yaml.Marshal(rules)
	case "json":
		out, err = json.MarshalIndent(rules, "", "  ")
	case "toml":
		out, err = toml.Marshal(rules)
	default:
		return errors.NewUserError(
			errors.Newf("invalid format %q", rulesFormat),
			"valid formats: yaml, json, toml")
	}
	if err != nil {
		return errors.Wrap(err, "marshaling rules")
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
