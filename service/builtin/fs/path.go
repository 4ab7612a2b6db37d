package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// resolve turns a command argument into an absolute path against the session
// working directory; absolute paths override, ~ expands to the user home.
func resolve(cwd, arg string) string {
	switch {
	case arg == "" || arg == "~":
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return cwd
	case strings.HasPrefix(arg, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, arg[2:])
		}
	case filepath.IsAbs(arg):
		return filepath.Clean(arg)
	}
	return filepath.Join(cwd, arg)
}

// splitFlags separates single-dash flag arguments from positional ones;
// grouped flags (-rf) expand to individual letters.
func splitFlags(args []string) (map[string]bool, []string) {
	flags := make(map[string]bool)
	var positional []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") && len(arg) > 1 {
			for _, flag := range arg[1:] {
				flags[string(flag)] = true
			}
			continue
		}
		positional = append(positional, arg)
	}
	return flags, positional
}
