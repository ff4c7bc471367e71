// Package load parses crossword structure and word-list files into the
// solver's input model.
package load

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
)

// Structure reads a grid layout file: one line per row, '_' marking a
// fillable cell and any other character a blocked one. Short lines are
// padded with blocked cells so the matrix comes out rectangular.
func Structure(path string) ([][]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	width := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		lines = append(lines, line)
		if len(line) > width {
			width = len(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("structure file %s is empty", path)
	}

	structure := make([][]bool, len(lines))
	for i, line := range lines {
		structure[i] = make([]bool, width)
		for j, r := range line {
			structure[i][j] = r == '_'
		}
	}
	return structure, nil
}

// Words reads a word-list file: one word per line, blank lines and lines
// starting with '#' skipped. Words are uppercased and deduplicated; a word
// with anything other than letters A-Z is an error.
func Words(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		for _, r := range word {
			if r < 'A' || r > 'Z' {
				return nil, fmt.Errorf("word %s contains non-letter character %q", word, r)
			}
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lo.Uniq(words), nil
}
