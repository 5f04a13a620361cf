// Package library implements the loan ledger for a small single-session
// library: a catalog of books, a roster of members, and an append-oriented
// transaction ledger that derives copy availability on demand.
package library

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Validation failures surfaced to the caller before any mutation happens.
var (
	ErrTitleRequired     = errors.New("book title is required")
	ErrNameRequired      = errors.New("member name is required")
	ErrUnknownBook       = errors.New("book does not exist")
	ErrUnknownMember     = errors.New("member does not exist")
	ErrNoAvailableCopies = errors.New("no copies available")
	ErrNoRecords         = errors.New("no records to export")
)

// Library is the single owner of the three record collections. All mutations
// go through its methods; derived values (availability, active issues) are
// recomputed from the live collections on every call and never cached.
//
// A Library serves exactly one writer at a time and is not safe for
// concurrent use.
type Library struct {
	books        []Book
	members      []Member
	transactions []Transaction

	store Store
	ids   IDSource
	clock Clock
}

// Open loads the three collections from store, substituting the built-in seed
// dataset for any key that is absent or unreadable. The returned Library uses
// uuid identifiers and the wall clock.
func Open(store Store) *Library {
	return OpenWith(store, uuidSource{}, systemClock{})
}

// OpenWith is Open with injectable identifier and time sources.
func OpenWith(store Store, ids IDSource, clock Clock) *Library {
	return &Library{
		books:        loadCollection(store, KeyBooks, seedBooks()),
		members:      loadCollection(store, KeyMembers, seedMembers()),
		transactions: loadCollection(store, KeyTransactions, []Transaction{}),
		store:        store,
		ids:          ids,
		clock:        clock,
	}
}

// loadCollection decodes one persisted collection. A missing key, a store
// error, or malformed JSON all fall back to seed so the application always
// starts in a usable state.
func loadCollection[T any](store Store, key string, seed []T) []T {
	raw, ok, err := store.Load(key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("load failed, starting from seed data")
		return append([]T(nil), seed...)
	}
	if !ok {
		return append([]T(nil), seed...)
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("malformed data, starting from seed data")
		return append([]T(nil), seed...)
	}
	if out == nil {
		out = []T{}
	}
	return out
}

// persist writes all three collections back to the store after a mutation.
// Save failures are logged and otherwise ignored: the in-memory state stays
// authoritative for the rest of the session.
func (l *Library) persist() {
	saveCollection(l.store, KeyBooks, l.books)
	saveCollection(l.store, KeyMembers, l.members)
	saveCollection(l.store, KeyTransactions, l.transactions)
}

func saveCollection[T any](store Store, key string, records []T) {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("encode failed, skipping save")
		return
	}
	if err := store.Save(key, raw); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("save failed, keeping in-memory state")
	}
}

// Books returns a copy of the catalog in stored (newest-first) order.
func (l *Library) Books() []Book { return append([]Book(nil), l.books...) }

// Members returns a copy of the roster in stored (newest-first) order.
func (l *Library) Members() []Member { return append([]Member(nil), l.members...) }

// Transactions returns a copy of the full ledger, newest-first.
func (l *Library) Transactions() []Transaction {
	return append([]Transaction(nil), l.transactions...)
}
