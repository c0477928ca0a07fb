package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// WordEntry is one line of a batch file
type WordEntry struct {
	Word        string
	Translation string
	// NeedsWord is set for "= english" lines; the Spanish word comes from translation
	NeedsWord bool
}

// ReadBatchFile reads the word list in filename. See Read for the format.
func ReadBatchFile(filename string) ([]WordEntry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer f.Close()

	entries, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file %s: %w", filename, err)
	}
	return entries, nil
}

// Read parses one entry per line:
//   - Spanish word only: "ciudad"
//   - With translation: "ciudad = city"
//   - English only: "= city" (translated to Spanish before analysis)
//
// Blank lines and lines starting with '#' are skipped.
func Read(r io.Reader) ([]WordEntry, error) {
	var entries []WordEntry

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		word, translation, found := strings.Cut(line, "=")
		if !found {
			entries = append(entries, WordEntry{Word: line})
			continue
		}

		word = strings.TrimSpace(word)
		translation = strings.TrimSpace(translation)
		switch {
		case word == "" && translation != "":
			entries = append(entries, WordEntry{Translation: translation, NeedsWord: true})
		case word != "":
			entries = append(entries, WordEntry{Word: word, Translation: translation})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
