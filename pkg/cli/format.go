package cli

import (
	"fmt"
	"sort"
)

// formatInfo renders an attribute map as sorted "key: value" lines.
func formatInfo(info map[string]interface{}) []string {
	keys := make([]string, 0, len(info))
	for key := range info {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", key, info[key]))
	}
	return lines
}
