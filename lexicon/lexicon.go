package lexicon

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Polarity labels used by the Bing lexicon.
const (
	Positive = "positive"
	Negative = "negative"
)

// Lexicon is a static mapping from lowercase word to sentiment or emotion
// labels. A word may carry several labels (the NRC lexicon tags words with
// multiple emotions). It is immutable after loading.
type Lexicon struct {
	name   string
	labels map[string][]string
}

// Load parses "word,label" CSV records from r. A header row ("word,...") is
// skipped if present, as are malformed or empty lines. A lexicon with no
// usable entries is a load error.
func Load(name string, r io.Reader) (*Lexicon, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	lex := &Lexicon{
		name:   name,
		labels: make(map[string][]string),
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("lexicon %q: read: %w", name, err)
		}
		if len(record) < 2 {
			continue
		}

		word := strings.ToLower(strings.TrimSpace(record[0]))
		label := strings.ToLower(strings.TrimSpace(record[1]))
		if word == "" || label == "" || word == "word" {
			continue
		}

		lex.add(word, label)
	}

	if lex.Len() == 0 {
		return nil, fmt.Errorf("lexicon %q: no entries", name)
	}
	return lex, nil
}

// LoadFile loads a lexicon from a CSV file on disk.
func LoadFile(name, path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon %q: open %q: %w", name, path, err)
	}
	defer f.Close()
	return Load(name, f)
}

func (l *Lexicon) add(word, label string) {
	for _, existing := range l.labels[word] {
		if existing == label {
			return
		}
	}
	l.labels[word] = append(l.labels[word], label)
}

// Labels returns the labels for a word, or nil when the word carries none.
// Lookup is exact-match on the already-normalized token.
func (l *Lexicon) Labels(word string) []string {
	return l.labels[word]
}

// Contains reports whether the word has at least one label.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.labels[word]
	return ok
}

// Len returns the number of distinct words in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.labels)
}

// Name returns the lexicon's display name.
func (l *Lexicon) Name() string {
	return l.name
}
