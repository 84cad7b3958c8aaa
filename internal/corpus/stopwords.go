package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadStopwords reads one stopword per line from path, trimming
// whitespace. Blank lines are skipped.
func LoadStopwords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Error: The file does not exist.\nThe current recognized file path is  %s", path)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stopwords file: %w", err)
	}
	return words, nil
}
