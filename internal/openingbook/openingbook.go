// Package openingbook persists recommended moves for known positions
// in a badger key-value store, keyed by a position hash. It is never
// consulted by internal/engine's search; it is strictly an optional
// accelerant for internal/robot's self-play driver, which primes new
// games from it before falling back to searchTree.
package openingbook

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v4"

	"github.com/haigo/gongo/internal/engine"
)

// ErrNotFound is returned by Lookup when no entry exists for a position.
var ErrNotFound = errors.New("openingbook: no entry for position")

// Book is a badger-backed store mapping position hashes to a
// recommended vertex for the side to move.
type Book struct {
	db *badger.DB
}

// Open opens (creating if necessary) a badger database at dir.
func Open(dir string) (*Book, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("openingbook: open %s: %w", dir, err)
	}
	return &Book{db: db}, nil
}

// OpenInMemory opens a book with no persistent backing, for tests and
// for self-play runs that should not touch disk.
func OpenInMemory() (*Book, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("openingbook: open in-memory: %w", err)
	}
	return &Book{db: db}, nil
}

// Close releases the underlying database.
func (b *Book) Close() error {
	return b.db.Close()
}

// Hash computes the position key: an xxhash digest over the board's
// packed stone bits plus the side to move, so Black-to-move and
// White-to-move at the same stone layout hash to different entries.
func Hash(board *engine.BoardState, toMove engine.Color) uint64 {
	n := board.Size()
	buf := make([]byte, 0, n*n/4+9)
	buf = append(buf, byte(n), byte(toMove))
	var cur byte
	bits := 0
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			cur = cur<<2 | byte(board.GetStone(i, j))
			bits++
			if bits == 4 {
				buf = append(buf, cur)
				cur, bits = 0, 0
			}
		}
	}
	if bits > 0 {
		buf = append(buf, cur<<uint(2*(4-bits)))
	}
	return xxhash.Sum64(buf)
}

// Put records vertex as the recommended move for the position keyed by
// hash.
func (b *Book) Put(hash uint64, vertex engine.Point) error {
	key := keyBytes(hash)
	value := encodePoint(vertex)
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// Lookup returns the recommended vertex for hash, or ErrNotFound.
func (b *Book) Lookup(hash uint64) (engine.Point, error) {
	key := keyBytes(hash)
	var point engine.Point
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			point = decodePoint(val)
			return nil
		})
	})
	if err != nil {
		return engine.Point{}, err
	}
	return point, nil
}

func keyBytes(hash uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, hash)
	return key
}

func encodePoint(p engine.Point) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint32(buf[0:4], uint32(int32(p.I)))
	binary.BigEndian.PutUint32(buf[4:8], uint32(int32(p.J)))
	return buf
}

func decodePoint(buf []byte) engine.Point {
	return engine.Point{
		I: int(int32(binary.BigEndian.Uint32(buf[0:4]))),
		J: int(int32(binary.BigEndian.Uint32(buf[4:8]))),
	}
}
