package inventory

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"howett.net/plist"
)

const (
	// descriptorExt is the only file extension considered during a scan.
	descriptorExt = ".plist"
	// vendorPrefix marks built-in Apple services, which are never listed.
	vendorPrefix = "com.apple."
)

// candidate is a descriptor file with an extracted label, before its
// runtime status has been resolved. Candidates never leave this package.
type candidate struct {
	label string
	path  string
}

// scanDir returns the candidates found as direct children of dir, in
// directory listing order. A missing or unreadable directory yields an
// empty result. Files with no decodable label, and files whose label
// carries the vendor prefix, are skipped.
func scanDir(dir string) []candidate {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var out []candidate
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), descriptorExt) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		label, err := readLabel(path)
		if err != nil || label == "" {
			log.Debug("skipping descriptor without label", "path", path, "err", err)
			continue
		}
		if strings.HasPrefix(label, vendorPrefix) {
			continue
		}
		out = append(out, candidate{label: label, path: path})
	}
	return out
}

// readLabel extracts the Label key from a launchd property list.
func readLabel(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var descriptor struct {
		Label string `plist:"Label"`
	}
	if _, err := plist.Unmarshal(data, &descriptor); err != nil {
		return "", err
	}
	return descriptor.Label, nil
}
