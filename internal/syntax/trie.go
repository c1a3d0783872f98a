package syntax

import "fmt"

// Keyword pairs a reserved spelling with the kind its tokens take.
type Keyword struct {
	Spelling string
	Kind     Kind
}

// Edges are keyed over the identifier alphabet only: 0-9, A-Z, a-z, _.
const alphabetSize = 10 + 26 + 26 + 1

// edge maps an identifier character to its child slot.
func edge(c byte) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'A' <= c && c <= 'Z':
		return 10 + int(c-'A'), true
	case 'a' <= c && c <= 'z':
		return 36 + int(c-'a'), true
	case c == '_':
		return 62, true
	}
	return 0, false
}

type trieNode struct {
	next     [alphabetSize]*trieNode
	kind     Kind
	terminal bool // kind is meaningful only on terminal nodes
}

// Trie is a prefix tree classifying identifiers as keywords.
// It is immutable once built and safe to share between scanners.
type Trie struct {
	root trieNode
	size int
}

// NewTrie builds a trie from the given table. Spellings must be non-empty,
// unique, and made of identifier characters.
func NewTrie(keywords []Keyword) (*Trie, error) {
	t := &Trie{}
	for _, kw := range keywords {
		if err := t.insert(kw); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// MustTrie is like NewTrie but panics if the table is invalid.
// It is meant for tables fixed at compile time.
func MustTrie(keywords []Keyword) *Trie {
	t, err := NewTrie(keywords)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Trie) insert(kw Keyword) error {
	if kw.Spelling == "" {
		return fmt.Errorf("keyword table: empty spelling for %s", kw.Kind)
	}
	n := &t.root
	for i := 0; i < len(kw.Spelling); i++ {
		e, ok := edge(kw.Spelling[i])
		if !ok {
			return fmt.Errorf("keyword table: %q: invalid character %q", kw.Spelling, kw.Spelling[i])
		}
		if n.next[e] == nil {
			n.next[e] = &trieNode{}
		}
		n = n.next[e]
	}
	if n.terminal {
		return fmt.Errorf("keyword table: duplicate spelling %q", kw.Spelling)
	}
	n.kind = kw.Kind
	n.terminal = true
	t.size++
	return nil
}

// Lookup reports the keyword kind for ident. The second result is false
// when ident is not exactly one of the table's spellings; prefixes and
// extensions of a keyword are not keywords.
func (t *Trie) Lookup(ident string) (Kind, bool) {
	n := &t.root
	for i := 0; i < len(ident); i++ {
		e, ok := edge(ident[i])
		if !ok || n.next[e] == nil {
			return 0, false
		}
		n = n.next[e]
	}
	if !n.terminal {
		return 0, false
	}
	return n.kind, true
}

// Len returns the number of keywords in the trie.
func (t *Trie) Len() int {
	return t.size
}
