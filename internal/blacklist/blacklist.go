package blacklist

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Filter rejects URLs containing any term from a newline-delimited file.
// The file is re-read on every check, so edits take effect without a restart.
type Filter struct {
	path string
}

func New(path string) *Filter {
	return &Filter{path: path}
}

// Terms loads the blacklist file. A missing file is not an error:
// the blacklist is curated externally and may simply not exist yet.
func (f *Filter) Terms() ([]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error opening blacklist file: %w", err)
	}
	defer file.Close()

	terms := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		term := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if term == "" {
			continue
		}
		terms = append(terms, term)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading blacklist file: %w", err)
	}

	return terms, nil
}

// IsBlacklisted reports whether any loaded term is a case-insensitive
// substring of the URL.
func (f *Filter) IsBlacklisted(url string) (bool, error) {
	terms, err := f.Terms()
	if err != nil {
		return false, err
	}

	lower := strings.ToLower(url)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true, nil
		}
	}

	return false, nil
}
