package suggest

import (
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"
)

// nodeID indexes into PhraseIndex.nodes. The root is always 0.
type nodeID uint32

const rootID nodeID = 0

// node is one character position of the trie.
// freqs maps a phrase ID to the number of times that phrase was inserted,
// and holds an entry for every phrase whose path crosses this node.
type node struct {
	children      map[rune]nodeID
	terminal      bool
	terminalCount int
	freqs         map[uint32]int
}

// PhraseIndex is a character trie over lower-cased phrases plus a word index.
//
// Nodes are kept in an arena owned by the index, so two indexes never share a node.
// Phrases keep their original casing and get a dense ID in first-insertion order,
// which is also the tie-break order for equal frequencies.
//
// PhraseIndex does no locking: callers serialize Insert against every reader.
type PhraseIndex struct {
	nodes     []node
	phrases   []string
	ids       map[string]uint32
	counts    []int
	inserts   int
	words     *patricia.Trie
	wordCount int
}

// NewPhraseIndex returns an empty index holding only the root node.
func NewPhraseIndex() *PhraseIndex {
	return &PhraseIndex{
		nodes: []node{{}},
		ids:   make(map[string]uint32),
		words: patricia.NewTrie(),
	}
}

// Insert records one occurrence of phrase.
// Traversal uses the lower-cased phrase while the original casing is what gets stored,
// so results come back as first written. The phrase is not trimmed.
// Empty and whitespace-only phrases are rejected with ErrEmptyPhrase.
func (idx *PhraseIndex) Insert(phrase string) error {
	if strings.TrimSpace(phrase) == "" {
		return ErrEmptyPhrase
	}

	id := idx.phraseID(phrase)
	idx.counts[id]++
	idx.inserts++

	lower := strings.ToLower(phrase)
	cur := rootID
	for _, r := range lower {
		next, ok := idx.nodes[cur].children[r]
		if !ok {
			next = idx.newNode()
			if idx.nodes[cur].children == nil {
				idx.nodes[cur].children = make(map[rune]nodeID)
			}
			idx.nodes[cur].children[r] = next
		}
		cur = next
		idx.nodes[cur].freqs[id]++
	}

	end := &idx.nodes[cur]
	end.terminal = true
	end.terminalCount++

	idx.indexWords(lower, id)
	return nil
}

func (idx *PhraseIndex) phraseID(phrase string) uint32 {
	if id, ok := idx.ids[phrase]; ok {
		return id
	}
	id := uint32(len(idx.phrases))
	idx.ids[phrase] = id
	idx.phrases = append(idx.phrases, phrase)
	idx.counts = append(idx.counts, 0)
	return id
}

func (idx *PhraseIndex) newNode() nodeID {
	idx.nodes = append(idx.nodes, node{freqs: make(map[uint32]int, 1)})
	return nodeID(len(idx.nodes) - 1)
}

// walk follows prefix from the root. ok is false as soon as a character has no child.
func (idx *PhraseIndex) walk(lowerPrefix string) (nodeID, bool) {
	cur := rootID
	for _, r := range lowerPrefix {
		next, ok := idx.nodes[cur].children[r]
		if !ok {
			return 0, false
		}
		cur = next
	}
	return cur, true
}

// Stats returns counters about the loaded corpus.
func (idx *PhraseIndex) Stats() map[string]int {
	return map[string]int{
		"phrases":         idx.inserts,
		"distinctPhrases": len(idx.phrases),
		"nodes":           len(idx.nodes) - 1,
		"words":           idx.wordCount,
	}
}
