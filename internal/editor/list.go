// Package editor implements the list editors the admin console uses to build
// job content row by row.
package editor

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrIndexOutOfRange = errors.New("row index out of range")
	ErrUnknownRow      = errors.New("unknown row")
)

// RowID identifies a row for as long as it exists, independent of its
// position. IDs of deleted rows are never handed out again.
type RowID string

// IDSource generates row identifiers.
type IDSource func() RowID

// NewUUID is the default IDSource.
func NewUUID() RowID {
	return RowID(uuid.NewString())
}

type options struct {
	ids IDSource
}

type Option func(*options)

// WithIDSource replaces the uuid generator, e.g. with a counter in tests.
func WithIDSource(src IDSource) Option {
	return func(o *options) {
		o.ids = src
	}
}

func buildOptions(opts []Option) options {
	o := options{ids: NewUUID}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Row is one entry of a List together with its identifier.
type Row[T any] struct {
	ID    RowID `json:"id"`
	Value T     `json:"value"`
}

// List keeps rows in an arena keyed by RowID and their on-screen order as a
// separate slice of IDs. Every mutation keeps the two in sync.
type List[T any] struct {
	rows    map[RowID]T
	order   []RowID
	retired map[RowID]struct{}
	newID   IDSource
}

// NewList creates a list holding values, giving each a fresh RowID.
func NewList[T any](values []T, opts ...Option) *List[T] {
	o := buildOptions(opts)
	l := &List[T]{
		rows:    make(map[RowID]T, len(values)),
		order:   make([]RowID, 0, len(values)),
		retired: make(map[RowID]struct{}),
		newID:   o.ids,
	}
	for _, v := range values {
		l.Append(v)
	}
	return l
}

// maxIDDraws bounds how often nextID asks the IDSource for an unused id.
const maxIDDraws = 1000

func (l *List[T]) nextID() RowID {
	for i := 0; i < maxIDDraws; i++ {
		id := l.newID()
		if _, live := l.rows[id]; live {
			continue
		}
		if _, used := l.retired[id]; used {
			continue
		}
		return id
	}
	panic(fmt.Sprintf("editor: IDSource returned only used row ids in %d draws", maxIDDraws))
}

func (l *List[T]) Len() int {
	return len(l.order)
}

func (l *List[T]) checkIndex(i int) error {
	if i < 0 || i >= len(l.order) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(l.order))
	}
	return nil
}

// IndexOf returns the current position of id.
func (l *List[T]) IndexOf(id RowID) (int, error) {
	for i, v := range l.order {
		if v == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrUnknownRow, id)
}

func (l *List[T]) Get(i int) (Row[T], error) {
	if err := l.checkIndex(i); err != nil {
		return Row[T]{}, err
	}
	id := l.order[i]
	return Row[T]{ID: id, Value: l.rows[id]}, nil
}

// Rows returns a snapshot in display order.
func (l *List[T]) Rows() []Row[T] {
	out := make([]Row[T], 0, len(l.order))
	for _, id := range l.order {
		out = append(out, Row[T]{ID: id, Value: l.rows[id]})
	}
	return out
}

// Values returns the row values in display order.
func (l *List[T]) Values() []T {
	out := make([]T, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.rows[id])
	}
	return out
}

// Append adds v at the end and returns its new RowID.
func (l *List[T]) Append(v T) RowID {
	id := l.nextID()
	l.rows[id] = v
	l.order = append(l.order, id)
	return id
}

// AppendEmpty adds a zero-value row at the end.
func (l *List[T]) AppendEmpty() RowID {
	var zero T
	return l.Append(zero)
}

// Insert puts v at position i, shifting later rows down. i may equal Len.
func (l *List[T]) Insert(i int, v T) (RowID, error) {
	if i < 0 || i > len(l.order) {
		return "", fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(l.order))
	}
	id := l.nextID()
	l.rows[id] = v
	l.order = append(l.order, "")
	copy(l.order[i+1:], l.order[i:])
	l.order[i] = id
	return id, nil
}

// RemoveAt deletes the row at i. The list may become empty.
func (l *List[T]) RemoveAt(i int) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	id := l.order[i]
	l.order = append(l.order[:i], l.order[i+1:]...)
	delete(l.rows, id)
	l.retired[id] = struct{}{}
	return nil
}

func (l *List[T]) Remove(id RowID) error {
	i, err := l.IndexOf(id)
	if err != nil {
		return err
	}
	return l.RemoveAt(i)
}

// Set replaces the value at i, keeping its RowID.
func (l *List[T]) Set(i int, v T) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	l.rows[l.order[i]] = v
	return nil
}

func (l *List[T]) SetByID(id RowID, v T) error {
	if _, ok := l.rows[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRow, id)
	}
	l.rows[id] = v
	return nil
}

// Update applies fn to the value at i in place.
func (l *List[T]) Update(i int, fn func(T) T) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	id := l.order[i]
	l.rows[id] = fn(l.rows[id])
	return nil
}

// Move takes the row at from and places it at to, the way a drag-and-drop
// does. Only positions change; IDs and values are untouched.
func (l *List[T]) Move(from, to int) error {
	if err := l.checkIndex(from); err != nil {
		return err
	}
	if err := l.checkIndex(to); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	id := l.order[from]
	if from < to {
		copy(l.order[from:to], l.order[from+1:to+1])
	} else {
		copy(l.order[to+1:from+1], l.order[to:from])
	}
	l.order[to] = id
	return nil
}
