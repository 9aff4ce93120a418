package bintree

import "github.com/holiman/uint256"

// The three rows of the trie.
const (
	Level0 uint8 = iota
	Level1
	Level2
)

// WordStore is the persistence boundary of the tree: one 256-bit word per
// (level, index) slot. Implementations must return a zero word for slots
// that were never written, and must not alias returned words with stored
// state.
type WordStore interface {
	Word(level uint8, index uint32) *uint256.Int
	PutWord(level uint8, index uint32, word *uint256.Int)
}

// MemStore is the in-memory WordStore used by tests and by hosts that load
// pair state fresh on every invocation.
type MemStore struct {
	words map[uint64]uint256.Int
}

func NewMemStore() *MemStore {
	return &MemStore{words: make(map[uint64]uint256.Int)}
}

func (s *MemStore) Word(level uint8, index uint32) *uint256.Int {
	w := s.words[wordKey(level, index)]
	return &w
}

func (s *MemStore) PutWord(level uint8, index uint32, word *uint256.Int) {
	k := wordKey(level, index)
	if word.IsZero() {
		delete(s.words, k)
		return
	}
	s.words[k] = *word
}

// Len returns the number of nonzero words held, across all levels.
func (s *MemStore) Len() int {
	return len(s.words)
}

func wordKey(level uint8, index uint32) uint64 {
	return uint64(level)<<32 | uint64(index)
}
