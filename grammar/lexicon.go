package grammar

// Lexicon maps word text to its category readings and remembers the order in
// which words were declared.
type Lexicon struct {
	order   []string
	entries map[string][]string
	longest int
}

// NewLexicon returns an empty lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{entries: make(map[string][]string)}
}

// Add records categories for text. Repeated entries merge their categories,
// keeping the first occurrence of each.
func (l *Lexicon) Add(text string, categories ...string) error {
	w, err := NewWord(text, categories...)
	if err != nil {
		return err
	}
	existing, ok := l.entries[text]
	if !ok {
		l.order = append(l.order, text)
		if len(text) > l.longest {
			l.longest = len(text)
		}
	}
	for _, c := range w.Categories {
		if !contains(existing, c) {
			existing = append(existing, c)
		}
	}
	l.entries[text] = existing
	return nil
}

// Lookup returns the word for text.
func (l *Lexicon) Lookup(text string) (Word, bool) {
	cats, ok := l.entries[text]
	if !ok {
		return Word{}, false
	}
	return Word{Text: text, Categories: append([]string(nil), cats...)}, true
}

// Words returns every entry in declaration order.
func (l *Lexicon) Words() []Word {
	words := make([]Word, 0, len(l.order))
	for _, text := range l.order {
		w, _ := l.Lookup(text)
		words = append(words, w)
	}
	return words
}

// Len returns the number of distinct entries.
func (l *Lexicon) Len() int {
	return len(l.order)
}

// Longest returns the byte length of the longest entry.
func (l *Lexicon) Longest() int {
	return l.longest
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
