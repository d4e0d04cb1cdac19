package scan

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Discover recursively collects every regular file under the given
// directories, in lexical walk order
// Arguments that do not exist or are not directories are logged and
// skipped, as are subtrees the walk cannot read: discovery never fails,
// it reports what it could reach
func Discover(dirs []string, logger *slog.Logger) []string {
	if logger == nil {
		logger = slog.Default()
	}

	var files []string
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil {
			logger.Warn("skipping unreadable directory", "dir", dir, "error", err)
			continue
		}
		if !info.IsDir() {
			logger.Warn("skipping non-directory argument", "dir", dir)
			continue
		}

		walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Warn("skipping unreadable path", "path", path, "error", err)
				return nil
			}
			if d.Type().IsRegular() {
				files = append(files, path)
			}
			return nil
		})
		if walkErr != nil {
			logger.Warn("walk aborted", "dir", dir, "error", walkErr)
		}
	}

	logger.Debug("discovery finished", "dirs", len(dirs), "files", len(files))
	return files
}
