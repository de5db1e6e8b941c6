// Package store owns every sale in the process: the committed map
// plus exactly one in-progress draft, and the allocators all ids come
// from.
package store

import (
	"fmt"
	"slices"

	"github.com/tillpad/tillpad/internal/sale"
)

// Store holds committed sales by id and the single draft. The draft id
// is never a committed key, and the allocator stays strictly ahead of
// both.
type Store struct {
	draftID   int
	draft     *sale.Sale
	committed map[int]*sale.Sale
	saleIDs   *sale.IDAllocator
	itemIDs   *sale.IDAllocator
}

// New returns a store with a blank draft at id 0.
func New() *Store {
	ids := sale.NewIDAllocator(0)
	return &Store{
		draftID:   ids.Next(),
		draft:     sale.New(),
		committed: make(map[int]*sale.Sale),
		saleIDs:   ids,
		itemIDs:   sale.NewIDAllocator(0),
	}
}

// Draft returns the in-progress sale and its id.
func (st *Store) Draft() (int, *sale.Sale) {
	return st.draftID, st.draft
}

// IsDraft reports whether id is the current draft.
func (st *Store) IsDraft(id int) bool {
	return id == st.draftID
}

// Has reports whether id resolves to the draft or a committed sale.
func (st *Store) Has(id int) bool {
	if id == st.draftID {
		return true
	}
	_, ok := st.committed[id]
	return ok
}

// Get resolves an id through the draft slot first, then the committed
// map. Screens only ever hold ids this store produced, so an unknown
// id is an internal consistency bug and panics.
func (st *Store) Get(id int) *sale.Sale {
	if id == st.draftID {
		return st.draft
	}
	if s, ok := st.committed[id]; ok {
		return s
	}
	panic(fmt.Sprintf("store: unknown sale id %d", id))
}

// Items is the allocator for line-item ids.
func (st *Store) Items() *sale.IDAllocator {
	return st.itemIDs
}

// CommittedIDs returns the committed sale ids in ascending order.
func (st *Store) CommittedIDs() []int {
	ids := make([]int, 0, len(st.committed))
	for id := range st.committed {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len is the number of committed sales.
func (st *Store) Len() int {
	return len(st.committed)
}

// Commit moves the draft into the committed map under its current id
// and installs a fresh blank draft at the next allocated id. The
// returned id is permanent and is never handed to a later draft.
func (st *Store) Commit() int {
	id, s := st.draftID, st.draft
	st.draftID = st.saleIDs.Next()
	st.draft = sale.New()
	st.committed[id] = s
	return id
}
