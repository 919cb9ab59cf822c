package container

import (
	"github.com/nyan233/karte/pkg/common/logger"
)

const vectorInitialCapacity = 4

// Vector is a growable array with explicit capacity management: storage
// doubles when full and halves when occupancy drops to a quarter. It is
// not goroutine safe. A nil *Vector behaves as an empty vector for every
// read-only query.
//
// The vector owns its backing storage only, never the elements; dropping
// an element does not release whatever it references.
type Vector[T any] struct {
	data []T
	used int
}

func NewVector[T any]() *Vector[T] {
	return &Vector[T]{
		data: make([]T, vectorInitialCapacity),
	}
}

func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.used
}

func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return len(v.data)
}

// resize reallocates the backing storage, requests below one slot are
// ignored.
func (v *Vector[T]) resize(capacity int) {
	if capacity < 1 {
		return
	}
	data := make([]T, capacity)
	copy(data, v.data[:v.used])
	v.data = data
}

// grow makes room for n more elements, doubling the capacity or jumping
// straight to the required size, whichever is larger.
func (v *Vector[T]) grow(n int) {
	need := v.used + n
	if need <= len(v.data) {
		return
	}
	newCap := len(v.data) * 2
	if newCap < need {
		newCap = need
	}
	if newCap < vectorInitialCapacity {
		newCap = vectorInitialCapacity
	}
	v.resize(newCap)
}

func (v *Vector[T]) Push(value T) {
	v.grow(1)
	v.data[v.used] = value
	v.used++
}

func (v *Vector[T]) Append(values ...T) {
	if len(values) == 0 {
		return
	}
	v.grow(len(values))
	copy(v.data[v.used:], values)
	v.used += len(values)
}

func (v *Vector[T]) AtOk(index int) (T, bool) {
	if v == nil || index < 0 || index >= v.used {
		logger.DefaultLogger.Error("vector: At index %d out of range [0:%d]", index, v.Len())
		return *new(T), false
	}
	return v.data[index], true
}

func (v *Vector[T]) At(index int) T {
	value, _ := v.AtOk(index)
	return value
}

func (v *Vector[T]) Set(index int, value T) bool {
	if v == nil || index < 0 || index >= v.used {
		logger.DefaultLogger.Error("vector: Set index %d out of range [0:%d]", index, v.Len())
		return false
	}
	v.data[index] = value
	return true
}

func (v *Vector[T]) FrontOk() (T, bool) {
	if v.Len() == 0 {
		logger.DefaultLogger.Error("vector: Front of empty vector")
		return *new(T), false
	}
	return v.data[0], true
}

func (v *Vector[T]) Front() T {
	value, _ := v.FrontOk()
	return value
}

func (v *Vector[T]) BackOk() (T, bool) {
	if v.Len() == 0 {
		logger.DefaultLogger.Error("vector: Back of empty vector")
		return *new(T), false
	}
	return v.data[v.used-1], true
}

func (v *Vector[T]) Back() T {
	value, _ := v.BackOk()
	return value
}

// Delete removes the element at index, shifting everything after it one
// slot to the left. The capacity is halved once occupancy falls to a
// quarter, but never while the vector still holds nothing.
func (v *Vector[T]) Delete(index int) bool {
	if v == nil || index < 0 || index >= v.used {
		logger.DefaultLogger.Error("vector: Delete index %d out of range [0:%d]", index, v.Len())
		return false
	}
	copy(v.data[index:], v.data[index+1:v.used])
	v.used--
	v.data[v.used] = *new(T)
	if v.used > 0 && v.used <= len(v.data)/4 {
		v.resize(len(v.data) / 2)
	}
	return true
}

// Reset drops every element but keeps the backing storage.
func (v *Vector[T]) Reset() {
	if v == nil {
		return
	}
	for i := 0; i < v.used; i++ {
		v.data[i] = *new(T)
	}
	v.used = 0
}

func (v *Vector[T]) Range(fn func(index int, value T) (next bool)) {
	if v == nil {
		return
	}
	for i := 0; i < v.used; i++ {
		if !fn(i, v.data[i]) {
			return
		}
	}
}

func (v *Vector[T]) Iterator() *Iterator[T] {
	return NewIterator(v.Len(), func(current int) T {
		return v.data[current]
	}, func() {})
}
