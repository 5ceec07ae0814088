package commands

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tmorrison/skillcheck/internal/errors"
	"github.com/tmorrison/skillcheck/internal/logging"
	"github.com/tmorrison/skillcheck/internal/skill"
	skillvalidator "github.com/tmorrison/skillcheck/internal/skill/validator"
	"github.com/tmorrison/skillcheck/internal/validator"
	"github.com/tmorrison/skillcheck/pkg/fileutil"
)

// validateFormat holds the value of the --format flag.
var validateFormat string

func init() {
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "",
		"report format: text, json, yaml (default from config)")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <path>...",
	Short: "Validate skill descriptor files",
	Long: `Validate one or more skill descriptors.

Each path may be a skill directory (SKILL.md is appended) or a
descriptor file. Violations of the authoring rules are reported as
errors; advisory findings, such as a body over the recommended length
or a non-standard file name, are reported as warnings.

Exit codes:
  0 - All descriptors are valid (warnings allowed)
  1 - At least one descriptor has blocking errors`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	format := validator.Format(validateFormat)
	if validateFormat == "" {
		format = validator.Format(viper.GetString("format"))
	}
	if !validator.ValidFormat(format) {
		return errors.NewUserError(
			errors.Newf("invalid format %q", format),
			"valid formats: text, json, yaml")
	}

	logger := logging.FromContext(cmd.Context())
	reporter := validator.NewReporter(cmd.OutOrStdout(), format)
	engine := skillvalidator.New()

	failed := false
	for _, arg := range args {
		result := validateOne(engine, arg, logger)
		if err := reporter.Report(displayPath(arg), result); err != nil {
			return err
		}
		if result.HasErrors() {
			failed = true
		}
	}

	if failed {
		return errors.NewExitError(errors.ErrValidationFailed, errors.ExitUser)
	}
	return nil
}

// validateOne runs the engine over a single descriptor path, layering
// the CLI-level findings (existence, readability, file naming) on top
// of the engine's result.
func validateOne(engine *skillvalidator.Validator, path string, logger *slog.Logger) *validator.Result {
	result := &validator.Result{}

	file := resolveSkillFile(path)
	logger.Debug("validating descriptor", "path", file)

	if base := filepath.Base(file); base != skill.DefaultFileName {
		result.AddWarningf("file", "skill file should be named %q, found %q", skill.DefaultFileName, base)
	}

	data, err := fileutil.ReadFileWithLimit(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.AddErrorf("file", "file not found: %s", file)
		} else {
			result.AddErrorf("file", "error reading file: %v", err)
		}
		return result
	}

	engineResult := engine.ValidateContent(string(data))
	result.Issues = append(result.Issues, engineResult.Issues...)
	return result
}

// resolveSkillFile maps a CLI argument to a descriptor file path:
// directories get the standard file name appended.
func resolveSkillFile(path string) string {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return filepath.Join(path, skill.DefaultFileName)
	}
	return path
}

// displayPath resolves the argument to an absolute path for reporting,
// falling back to the raw argument.
func displayPath(path string) string {
	abs, err := filepath.Abs(resolveSkillFile(path))
	if err != nil {
		return path
	}
	return abs
}
