package cli

import (
	"github.com/devicelab-dev/uiauto/pkg/selector"
	"github.com/urfave/cli/v2"
)

// criteriaFlags lists the global flags that map directly onto selector
// criteria keys.
var criteriaFlags = []string{"text", "res", "clazz", "desc", "pkg"}

// criteriaFromFlags builds the root selector criteria from the global flags.
// Returns an empty Criteria when no selector flag was set.
func criteriaFromFlags(c *cli.Context) selector.Criteria {
	return criteriaFromValues(func(name string) (string, bool) {
		if !c.IsSet(name) {
			return "", false
		}
		return c.String(name), true
	})
}

// criteriaFromValues is the flag-independent core of criteriaFromFlags,
// split out so it can be tested without a cli.Context.
func criteriaFromValues(lookup func(name string) (string, bool)) selector.Criteria {
	criteria := selector.Criteria{}
	for _, name := range criteriaFlags {
		if value, ok := lookup(name); ok {
			criteria[name] = value
		}
	}
	return criteria
}
