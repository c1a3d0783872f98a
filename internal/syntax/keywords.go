package syntax

import "sync"

// Keywords is the built-in reserved-word table.
// Treat it as read-only; DefaultTrie is built from it once.
var Keywords = []Keyword{
	{"proc", _Proc},
	{"if", _If},
	{"else", _Else},
	{"for", _For},
	{"while", _While},
	{"return", _Return},
	{"struct", _Struct},
	{"true", _True},
	{"false", _False},
	{"nil", _Nil},
	{"in", _In},
	{"pass", _Pass},
}

// DefaultTrie returns the shared trie for Keywords, building it on first use.
var DefaultTrie = sync.OnceValue(func() *Trie {
	return MustTrie(Keywords)
})
