package api

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// SanitizeFilename reduces an attachment display name to a bare file
// name safe to join under the download directory. Path separators
// (both kinds), drive prefixes and parent-directory escapes are
// stripped. Returns "" when nothing safe remains; callers substitute
// a fallback name.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	if name == "." || name == ".." || name == "/" {
		return ""
	}
	name = strings.ReplaceAll(name, ":", "")
	name = strings.TrimSpace(name)
	// A name of only dots would still walk nowhere, but is useless as
	// a file name.
	if strings.Trim(name, ".") == "" {
		return ""
	}
	return name
}

// createUnique opens a new file named name under dir, disambiguating
// collisions with a numeric suffix before the extension (report.pdf,
// report_1.pdf, ...). The O_EXCL create makes the reservation safe
// against concurrent invocations sharing the download directory.
func createUnique(dir, name string) (*os.File, string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 0; ; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s_%d%s", stem, i, ext)
		}
		full := filepath.Join(dir, candidate)
		f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, full, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", err
		}
	}
}
