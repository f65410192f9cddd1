package grammar

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"
)

var log = commonlog.GetLogger("chartparse.grammar")

// Grammar is a loaded grammar: rule pool, lexicon, goal category and an
// optional default sentence.
type Grammar struct {
	Start    string
	Pool     *Pool
	Lexicon  *Lexicon
	Sentence string
}

// File is the on-disk form of a grammar, shared by the YAML and JSONC formats.
//
//	start: S
//	lexicon:
//	  - word: 老
//	    categories: [ADJ, ADV]
//	rules:
//	  - S -> NP VP
type File struct {
	Start    string      `yaml:"start" json:"start"`
	Lexicon  []FileEntry `yaml:"lexicon" json:"lexicon"`
	Rules    []string    `yaml:"rules" json:"rules"`
	Sentence string      `yaml:"sentence,omitempty" json:"sentence,omitempty"`
}

// FileEntry is one lexicon line of a File.
type FileEntry struct {
	Word       string   `yaml:"word" json:"word"`
	Categories []string `yaml:"categories" json:"categories"`
}

// Load reads a grammar, choosing the decoder by file extension.
func Load(path string) (*Grammar, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ebnf":
		return LoadEBNF(path, "")
	case ".yaml", ".yml", ".json", ".jsonc":
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f *File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		f, err = ParseJSONC(data)
	default:
		f, err = ParseYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	g, err := f.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("loaded %s: %d rules, %d words, start %s", path, g.Pool.Len(), g.Lexicon.Len(), g.Start)
	return g, nil
}

// ParseYAML decodes a YAML grammar document.
func ParseYAML(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing yaml grammar: %w", err)
	}
	return &f, nil
}

// ParseJSONC strips comments and trailing commas, then decodes the JSON
// grammar document.
func ParseJSONC(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
		return nil, fmt.Errorf("parsing json grammar: %w", err)
	}
	return &f, nil
}

// Build validates the document and constructs the rule pool and lexicon in
// declaration order.
func (f *File) Build() (*Grammar, error) {
	g := &Grammar{
		Start:    f.Start,
		Pool:     NewPool(),
		Lexicon:  NewLexicon(),
		Sentence: f.Sentence,
	}
	if g.Start == "" {
		g.Start = DefaultStart
	}

	for i, e := range f.Lexicon {
		if e.Word == "" {
			return nil, fmt.Errorf("lexicon entry %d: empty word", i+1)
		}
		if err := g.Lexicon.Add(e.Word, e.Categories...); err != nil {
			return nil, fmt.Errorf("lexicon entry %d: %w", i+1, err)
		}
	}

	for i, text := range f.Rules {
		if _, err := g.Pool.AddText(text); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
	}

	return g, nil
}
