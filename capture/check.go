package capture

import (
	"sort"

	"github.com/andareed/mini-text/shell"
)

// Missing returns the tools from the given lists that are not on PATH,
// sorted and without duplicates.
func Missing(runner shell.Runner, tools ...[]string) []string {
	seen := make(map[string]bool)
	var missing []string
	for _, list := range tools {
		for _, tool := range list {
			if tool == "" || seen[tool] {
				continue
			}
			seen[tool] = true
			if _, err := runner.LookPath(tool); err != nil {
				missing = append(missing, tool)
			}
		}
	}
	sort.Strings(missing)
	return missing
}
