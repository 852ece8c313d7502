package suggest

// Snapshot is the shape of one trie node and everything below it.
// PhraseCount is the number of distinct phrases crossing the node, not the phrases.
type Snapshot struct {
	Terminal      bool                 `json:"is_end" msgpack:"is_end"`
	TerminalCount int                  `json:"frequency" msgpack:"frequency"`
	PhraseCount   int                  `json:"jokes_count" msgpack:"jokes_count"`
	Children      map[string]*Snapshot `json:"children" msgpack:"children"`
}

// Dump snapshots the live tree from the root. It does not modify the index.
func (idx *PhraseIndex) Dump() *Snapshot {
	return idx.snapshot(rootID)
}

func (idx *PhraseIndex) snapshot(id nodeID) *Snapshot {
	n := &idx.nodes[id]
	s := &Snapshot{
		Terminal:      n.terminal,
		TerminalCount: n.terminalCount,
		PhraseCount:   len(n.freqs),
		Children:      make(map[string]*Snapshot, len(n.children)),
	}
	for r, child := range n.children {
		s.Children[string(r)] = idx.snapshot(child)
	}
	return s
}
