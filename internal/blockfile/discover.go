package blockfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// DefaultIncludes matches block definition files anywhere below the source dir
var DefaultIncludes = []string{"**/*.bem.yaml", "**/*.bem.yml"}

// DiscoverStats tracks file discovery statistics
type DiscoverStats struct {
	FilesDiscovered int // Files matched by the include patterns
	FilesSkipped    int // Files dropped by .gitignore
}

// Discover finds definition files below root matching includes, in pattern
// order and without duplicates. When respectGitignore is set, files matched by
// root/.gitignore are skipped; a missing .gitignore is not an error.
func Discover(root string, includes []string, respectGitignore bool) ([]string, DiscoverStats, error) {
	var stats DiscoverStats
	if len(includes) == 0 {
		includes = DefaultIncludes
	}

	var gi *ignore.GitIgnore
	if respectGitignore {
		if compiled, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore")); err == nil {
			gi = compiled
		}
	}

	seen := make(map[string]bool)
	var files []string
	for _, pattern := range includes {
		// Use doublestar for ** glob support
		matches, err := doublestar.FilepathGlob(filepath.Join(root, pattern))
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if gi != nil {
				rel, err := filepath.Rel(root, match)
				if err == nil && gi.MatchesPath(filepath.ToSlash(rel)) {
					stats.FilesSkipped++
					continue
				}
			}
			files = append(files, match)
		}
	}

	return files, stats, nil
}
