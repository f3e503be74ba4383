package config

import (
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/packex/pkg/errors"
)

// GenerateConfigContent generates user configuration file content with all
// default values commented out. The defaults are round-tripped through a
// TOML marshal so the output stays canonical even if the embedded file
// changes formatting.
func GenerateConfigContent() (string, error) {
	var raw map[string]interface{}
	if err := gotoml.Unmarshal(defaultConfig, &raw); err != nil {
		return "", errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}

	out, err := gotoml.Marshal(raw)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal defaults")
	}

	header := "# packex configuration.\n# Uncomment a value to override the built-in default.\n\n"
	return header + commentOutConfigValues(string(out)), nil
}

// commentOutConfigValues takes TOML content and comments out all non-comment,
// non-blank lines that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [limits], [pricing]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		// Comment out configuration value lines
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
