package container

import (
	"testing"

	"github.com/nyan233/karte/pkg/common/logger"
	"github.com/nyan233/karte/pkg/utils/random"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.DefaultLogger = logger.NilLogger{}
	m.Run()
}

func TestVectorPush(t *testing.T) {
	vec := NewVector[uint32]()
	values := random.GenSequenceNumberOnFastRand(1000)
	for i, v := range values {
		vec.Push(v)
		assert.Equal(t, i+1, vec.Len())
	}
	// Growth along the way must never reorder or drop elements.
	for i, v := range values {
		got, ok := vec.AtOk(i)
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
	assert.GreaterOrEqual(t, vec.Cap(), vec.Len())
}

func TestVectorAppend(t *testing.T) {
	vec := NewVector[uint32]()
	values := random.GenSequenceNumberOnFastRand(100)
	vec.Append(values...)
	assert.Equal(t, 100, vec.Len())
	// A bulk append larger than double the capacity jumps straight to
	// the required size.
	assert.GreaterOrEqual(t, vec.Cap(), 100)
	for i, v := range values {
		assert.Equal(t, v, vec.At(i))
	}
	vec.Append()
	assert.Equal(t, 100, vec.Len())
}

func TestVectorNilReceiver(t *testing.T) {
	var vec *Vector[int]
	assert.Equal(t, 0, vec.Len())
	assert.Equal(t, 0, vec.Cap())
	_, ok := vec.AtOk(0)
	assert.False(t, ok)
	_, ok = vec.FrontOk()
	assert.False(t, ok)
	_, ok = vec.BackOk()
	assert.False(t, ok)
	vec.Reset()
	vec.Range(func(int, int) bool {
		t.Fatal("range on nil vector")
		return false
	})
	assert.False(t, vec.Iterator().Next())
}

func TestVectorAtSet(t *testing.T) {
	vec := NewVector[string]()
	vec.Append("a", "b", "c")
	assert.True(t, vec.Set(1, "B"))
	assert.Equal(t, "B", vec.At(1))
	assert.False(t, vec.Set(3, "x"))
	assert.False(t, vec.Set(-1, "x"))
	_, ok := vec.AtOk(3)
	assert.False(t, ok)
}

func TestVectorFrontBack(t *testing.T) {
	vec := NewVector[int]()
	_, ok := vec.FrontOk()
	assert.False(t, ok)
	_, ok = vec.BackOk()
	assert.False(t, ok)
	vec.Append(10, 20, 30)
	assert.Equal(t, 10, vec.Front())
	assert.Equal(t, 30, vec.Back())
}

func TestVectorDelete(t *testing.T) {
	vec := NewVector[string]()
	vec.Append("a", "b", "c", "d", "e")
	assert.True(t, vec.Delete(2))
	assert.Equal(t, 4, vec.Len())
	for i, want := range []string{"a", "b", "d", "e"} {
		assert.Equal(t, want, vec.At(i))
	}
	assert.False(t, vec.Delete(4))
	assert.Equal(t, 4, vec.Len())
}

func TestVectorShrink(t *testing.T) {
	vec := NewVector[int]()
	for i := 0; i < 32; i++ {
		vec.Push(i)
	}
	assert.Equal(t, 32, vec.Cap())
	// Occupancy falling to a quarter halves the capacity.
	for vec.Len() > 8 {
		vec.Delete(vec.Len() - 1)
	}
	assert.Equal(t, 16, vec.Cap())
	for i := 0; i < 8; i++ {
		assert.Equal(t, i, vec.At(i))
	}
}

func TestVectorReset(t *testing.T) {
	vec := NewVector[int]()
	vec.Append(1, 2, 3)
	vec.Reset()
	assert.Equal(t, 0, vec.Len())
	vec.Push(7)
	assert.Equal(t, 7, vec.Front())
}

func TestVectorRange(t *testing.T) {
	vec := NewVector[int]()
	vec.Append(1, 2, 3, 4)
	var visited int
	vec.Range(func(i, v int) bool {
		visited++
		return v < 2
	})
	assert.Equal(t, 2, visited)
}

func TestVectorIterator(t *testing.T) {
	vec := NewVector[uint32]()
	values := random.GenSequenceNumberOnFastRand(64)
	vec.Append(values...)
	iter := vec.Iterator()
	assert.Equal(t, 64, iter.Tail())
	for _, v := range values {
		assert.True(t, iter.Next())
		assert.Equal(t, v, iter.Take())
	}
	assert.False(t, iter.Next())
	iter.Reset()
	assert.True(t, iter.Next())
	assert.Equal(t, values[0], iter.Take())
}

func BenchmarkVector(b *testing.B) {
	b.Run("Push", func(b *testing.B) {
		b.ReportAllocs()
		vec := NewVector[int]()
		for i := 0; i < b.N; i++ {
			vec.Push(i)
		}
	})
	b.Run("At", func(b *testing.B) {
		vec := NewVector[int]()
		for i := 0; i < 1024; i++ {
			vec.Push(i)
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = vec.At(i % 1024)
		}
	})
}
