// Package suggest is the core, holding the phrase trie and the word index behind it, and the
// traversals that answer prefix completions, word lookups and tree dumps.
package suggest

// IIndex is the query surface the shells (server, CLI, TUI) consume.
type IIndex interface {
	// Insert adds one occurrence of phrase to the index
	Insert(phrase string) error

	// Autocomplete returns up to limit phrases starting with prefix, most frequent first
	Autocomplete(prefix string, limit int) ([]string, error)

	// Complete is Autocomplete with the frequency of each phrase attached
	Complete(prefix string, limit int) ([]Suggestion, error)

	// SearchWord returns every phrase containing word as a whitespace-delimited token
	SearchWord(word string) []string

	// Words lists indexed words starting with prefix
	Words(prefix string, limit int) []WordInfo

	// Dump returns a structural snapshot of the whole tree
	Dump() *Snapshot

	// Stats returns counters about the loaded corpus
	Stats() map[string]int
}

var _ IIndex = (*PhraseIndex)(nil)
