package main

import (
	"errors"
	"sort"
	"sync"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// ErrNotFound is returned when no book is stored under the requested id.
var ErrNotFound = errors.New("book not found")

// ErrDuplicateTitle is returned when a book with the same title already exists.
var ErrDuplicateTitle = errors.New("book title already exists")

// bookStore is what the handlers need from the record store.
// *Store satisfies this interface.
type bookStore interface {
	Update(fn func(tx *Tx) error) error
	View(fn func(tx *Tx) error) error
	Len() int
}

// Store is the in-memory record store. Every read and write goes through
// one exclusive lock.
type Store struct {
	mu     sync.Mutex
	books  map[int]Book
	lastID int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{books: make(map[int]Book)}
}

// Update runs fn with the store locked. Whatever fn does through tx is
// atomic with respect to every other Update and View.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{s: s})
}

// View runs fn with the store locked. fn must not mutate through tx.
func (s *Store) View(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{s: s})
}

// Len returns the number of stored books.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.books)
}

// Tx gives access to the store while its lock is held. It is only valid
// inside the callback it was passed to.
type Tx struct {
	s *Store
}

// Insert stores b under id, overwriting any existing entry.
func (tx *Tx) Insert(id int, b Book) {
	tx.s.books[id] = b
	if id > tx.s.lastID {
		tx.s.lastID = id
	}
}

func (tx *Tx) Get(id int) (Book, bool) {
	b, ok := tx.s.books[id]
	return b, ok
}

func (tx *Tx) Contains(id int) bool {
	_, ok := tx.s.books[id]
	return ok
}

// Remove deletes the entry at id and reports whether there was one.
func (tx *Tx) Remove(id int) bool {
	if _, ok := tx.s.books[id]; !ok {
		return false
	}
	delete(tx.s.books, id)
	return true
}

// List returns a snapshot of all entries ordered by id.
func (tx *Tx) List() []BookView {
	views := make([]BookView, 0, len(tx.s.books))
	for id, b := range tx.s.books {
		views = append(views, b.view(id))
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views
}

// NextID returns one more than the highest id ever inserted. Ids of deleted
// books are never handed out again.
func (tx *Tx) NextID() int {
	return tx.s.lastID + 1
}

// FindByTitle returns the id of the book with exactly this title.
func (tx *Tx) FindByTitle(title string) (int, bool) {
	for id, b := range tx.s.books {
		if b.Title == title {
			return id, true
		}
	}
	return 0, false
}
