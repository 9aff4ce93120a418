package bintree

import (
	"errors"
	"fmt"

	"dlmmGoSDK/constants"
	"dlmmGoSDK/maths"

	"github.com/holiman/uint256"
)

// ErrBinNotFound is returned by FindFirstBin when no populated bin exists
// in the requested direction. Recoverable: the caller decides whether an
// empty direction stops a fill or is an error.
var ErrBinNotFound = errors.New("no populated bin in the requested direction")

// Tree is a three-level 256-ary bitmap trie over the 24-bit bin id space.
// A bin id i is populated iff bit i&255 of level-2 word i>>8 is set; each
// branch bit is set iff at least one descendant leaf bit is set, so the
// nearest populated bin is found in at most three word scans per level.
type Tree struct {
	store WordStore
}

func NewTree(store WordStore) *Tree {
	return &Tree{store: store}
}

// Insert marks id as populated, setting branch bits for every word that
// transitions from empty. Idempotent.
func (t *Tree) Insert(id uint32) {
	checkID(id)

	leaf := t.store.Word(Level2, id>>8)
	if isBitSet(leaf, uint8(id)) {
		return
	}
	wasEmpty := leaf.IsZero()
	setBit(leaf, uint8(id))
	t.store.PutWord(Level2, id>>8, leaf)
	if !wasEmpty {
		return
	}

	branch := t.store.Word(Level1, id>>16)
	wasEmpty = branch.IsZero()
	setBit(branch, uint8(id>>8))
	t.store.PutWord(Level1, id>>16, branch)
	if !wasEmpty {
		return
	}

	root := t.store.Word(Level0, 0)
	setBit(root, uint8(id>>16))
	t.store.PutWord(Level0, 0, root)
}

// Remove clears id, clearing branch bits for every word that loses its
// last descendant. Removing an absent id is a no-op.
func (t *Tree) Remove(id uint32) {
	checkID(id)

	leaf := t.store.Word(Level2, id>>8)
	if !isBitSet(leaf, uint8(id)) {
		return
	}
	clearBit(leaf, uint8(id))
	t.store.PutWord(Level2, id>>8, leaf)
	if !leaf.IsZero() {
		return
	}

	branch := t.store.Word(Level1, id>>16)
	clearBit(branch, uint8(id>>8))
	t.store.PutWord(Level1, id>>16, branch)
	if !branch.IsZero() {
		return
	}

	root := t.store.Word(Level0, 0)
	clearBit(root, uint8(id>>16))
	t.store.PutWord(Level0, 0, root)
}

// Contains reports whether id is populated.
func (t *Tree) Contains(id uint32) bool {
	checkID(id)
	return isBitSet(t.store.Word(Level2, id>>8), uint8(id))
}

// FindFirstBin returns the nearest populated id other than id itself,
// strictly below it when searchBelow is set, strictly above otherwise.
// Read-only: three stages, one per level, each restricted to the requested
// side of id's path through the trie.
func (t *Tree) FindFirstBin(id uint32, searchBelow bool) (uint32, error) {
	checkID(id)

	// Stage 1: the leaf word holding id.
	leafIndex := id >> 8
	bit := uint8(id)
	if searchBelow && bit > 0 {
		if b, err := maths.ClosestBitRight(t.store.Word(Level2, leafIndex), bit-1); err == nil {
			return leafIndex<<8 | uint32(b), nil
		}
	} else if !searchBelow && bit < 255 {
		if b, err := maths.ClosestBitLeft(t.store.Word(Level2, leafIndex), bit+1); err == nil {
			return leafIndex<<8 | uint32(b), nil
		}
	}

	// Stage 2: the level-1 word holding id's leaf.
	branchIndex := id >> 16
	branchBit := uint8(id >> 8)
	if searchBelow && branchBit > 0 {
		if b, err := maths.ClosestBitRight(t.store.Word(Level1, branchIndex), branchBit-1); err == nil {
			return t.extremeBinOfLeaf(branchIndex<<8|uint32(b), searchBelow), nil
		}
	} else if !searchBelow && branchBit < 255 {
		if b, err := maths.ClosestBitLeft(t.store.Word(Level1, branchIndex), branchBit+1); err == nil {
			return t.extremeBinOfLeaf(branchIndex<<8|uint32(b), searchBelow), nil
		}
	}

	// Stage 3: the root word.
	rootBit := uint8(id >> 16)
	var (
		b   uint8
		err error
	)
	if searchBelow {
		if rootBit == 0 {
			return 0, ErrBinNotFound
		}
		b, err = maths.ClosestBitRight(t.store.Word(Level0, 0), rootBit-1)
	} else {
		if rootBit == 255 {
			return 0, ErrBinNotFound
		}
		b, err = maths.ClosestBitLeft(t.store.Word(Level0, 0), rootBit+1)
	}
	if err != nil {
		return 0, ErrBinNotFound
	}

	// Branch bits imply nonzero descendants, so the extreme scans below
	// cannot hit a zero word.
	branchIndex = uint32(b)
	branchBit = maths.SignificantBit(t.store.Word(Level1, branchIndex), searchBelow)
	return t.extremeBinOfLeaf(branchIndex<<8|uint32(branchBit), searchBelow), nil
}

// extremeBinOfLeaf returns the highest id of a leaf word when descending
// (searching below), the lowest when ascending.
func (t *Tree) extremeBinOfLeaf(leafIndex uint32, searchBelow bool) uint32 {
	return leafIndex<<8 | uint32(maths.SignificantBit(t.store.Word(Level2, leafIndex), searchBelow))
}

func checkID(id uint32) {
	if id > constants.MaxBinID {
		panic(fmt.Sprintf("bintree: bin id %d out of the 24-bit id space", id))
	}
}

func isBitSet(w *uint256.Int, bit uint8) bool {
	return w[bit/64]&(uint64(1)<<(bit%64)) != 0
}

func setBit(w *uint256.Int, bit uint8) {
	w[bit/64] |= uint64(1) << (bit % 64)
}

func clearBit(w *uint256.Int, bit uint8) {
	w[bit/64] &^= uint64(1) << (bit % 64)
}
