// Package flagx pre-scans command-line arguments for the few flags that must
// be known before the command tree is built (the config file path).
package flagx

import (
	"strings"
)

// ConfigFlags are the spellings accepted for the JSON config file path.
var ConfigFlags = []string{"-c", "--config"}

// FilterArgs returns only the allowed flags (and their values) from args.
//
// Supported formats:
//  1. Flag and value as separate arguments:  -c conf.json
//  2. Flag and value combined with '=':      --config=conf.json
//
// The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			// a following token that is not a flag is this flag's value
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ConfigPath extracts the config file path from args (usually os.Args[1:]).
// When the flag is repeated the last value wins. Empty means no file.
func ConfigPath(args []string) string {
	var path string

	filtered := FilterArgs(args, ConfigFlags)
	for i := 0; i < len(filtered); i++ {
		if _, value, ok := strings.Cut(filtered[i], "="); ok {
			path = value
			continue
		}
		if i+1 < len(filtered) && !strings.HasPrefix(filtered[i+1], "-") {
			path = filtered[i+1]
			i++
		}
	}

	return path
}
