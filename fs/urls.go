package fs

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"

	"github.com/fwojciec/campscout"
)

// LoadURLs reads a URL list file, one URL per line. Blank lines and
// lines starting with # are skipped; duplicates are removed preserving
// first-occurrence order.
func LoadURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seen := make(map[string]bool)
	var urls []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return urls, nil
}

// WriteSummary writes a crawl summary as indented JSON.
func WriteSummary(path string, summary *campscout.Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
