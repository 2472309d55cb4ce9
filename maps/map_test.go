package maps

import (
	"testing"

	"github.com/amp-labs/sortedcol/sortable"
	"github.com/stretchr/testify/assert"
)

func TestMapInsertGetRemove(t *testing.T) {
	t.Parallel()

	m := New[sortable.Int, string]()
	assert.True(t, m.IsEmpty())

	old := m.Insert(1, "one")
	assert.True(t, old.Empty())
	assert.Equal(t, 1, m.Len())

	old = m.Insert(1, "uno")
	assert.True(t, old.NonEmpty())
	assert.Equal(t, sortable.Int(1), old.GetOrPanic().First())
	assert.Equal(t, "one", old.GetOrPanic().Second())
	assert.Equal(t, 1, m.Len())

	v := m.Get(1)
	assert.True(t, v.NonEmpty())
	assert.Equal(t, "uno", v.GetOrPanic())

	assert.True(t, m.Contains(1))
	assert.False(t, m.Contains(2))

	removed := m.Remove(1)
	assert.True(t, removed.NonEmpty())
	assert.Equal(t, "uno", removed.GetOrPanic())
	assert.True(t, m.IsEmpty())

	removed = m.Remove(1)
	assert.True(t, removed.Empty())
}

func TestMapInsertReturnsReplacedKeyAndValue(t *testing.T) {
	t.Parallel()

	m := New[sortable.Int, string]()

	assert.True(t, m.Insert(37, "a").Empty())

	second := m.Insert(37, "b")
	assert.True(t, second.NonEmpty())
	assert.Equal(t, sortable.Int(37), second.GetOrPanic().First())
	assert.Equal(t, "a", second.GetOrPanic().Second())

	third := m.Insert(37, "c")
	assert.True(t, third.NonEmpty())
	assert.Equal(t, sortable.Int(37), third.GetOrPanic().First())
	assert.Equal(t, "b", third.GetOrPanic().Second())

	assert.Equal(t, "c", m.Get(37).GetOrPanic())
}

func TestMapGetMut(t *testing.T) {
	t.Parallel()

	m := New[sortable.Int, int]()
	m.Insert(1, 10)

	v, ok := m.GetMut(1)
	assert.True(t, ok)
	*v = 20

	got := m.Get(1)
	assert.Equal(t, 20, got.GetOrPanic())

	_, ok = m.GetMut(2)
	assert.False(t, ok)
}

func TestMapGetKeyValueAndRemoveEntry(t *testing.T) {
	t.Parallel()

	m := New[sortable.Int, string]()
	m.Insert(1, "one")

	kv := m.GetKeyValue(1)
	assert.True(t, kv.NonEmpty())
	pair := kv.GetOrPanic()
	assert.Equal(t, sortable.Int(1), pair.First())
	assert.Equal(t, "one", pair.Second())

	entry := m.RemoveEntry(1)
	assert.True(t, entry.NonEmpty())
	assert.Equal(t, "one", entry.GetOrPanic().Second())
	assert.True(t, m.IsEmpty())

	assert.True(t, m.RemoveEntry(1).Empty())
}

func TestMapFirstLastPopFirstPopLast(t *testing.T) {
	t.Parallel()

	m := New[sortable.Int, string]()

	assert.True(t, m.First().Empty())
	assert.True(t, m.Last().Empty())
	_, ok := m.FirstMut()
	assert.False(t, ok)
	_, ok = m.LastMut()
	assert.False(t, ok)

	m.Insert(3, "three")
	m.Insert(1, "one")
	m.Insert(2, "two")

	first := m.First().GetOrPanic()
	assert.Equal(t, sortable.Int(1), first.First())

	last := m.Last().GetOrPanic()
	assert.Equal(t, sortable.Int(3), last.First())

	fv, ok := m.FirstMut()
	assert.True(t, ok)
	*fv = "uno"
	assert.Equal(t, "uno", m.Get(1).GetOrPanic())

	lv, ok := m.LastMut()
	assert.True(t, ok)
	*lv = "tres"
	assert.Equal(t, "tres", m.Get(3).GetOrPanic())

	popped := m.PopFirst().GetOrPanic()
	assert.Equal(t, sortable.Int(1), popped.First())
	assert.Equal(t, 2, m.Len())

	popped = m.PopLast().GetOrPanic()
	assert.Equal(t, sortable.Int(3), popped.First())
	assert.Equal(t, 1, m.Len())

	m.Clear()
	assert.True(t, m.IsEmpty())
	assert.True(t, m.PopFirst().Empty())
	assert.True(t, m.PopLast().Empty())
}

func TestMapAppend(t *testing.T) {
	t.Parallel()

	a := New[sortable.Int, string]()
	a.Insert(1, "a-one")
	a.Insert(2, "a-two")

	b := New[sortable.Int, string]()
	b.Insert(2, "b-two")
	b.Insert(3, "b-three")

	a.Append(b)

	assert.True(t, b.IsEmpty())
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, "a-one", a.Get(1).GetOrPanic())
	assert.Equal(t, "b-two", a.Get(2).GetOrPanic())
	assert.Equal(t, "b-three", a.Get(3).GetOrPanic())
}

func TestMapAppendSelfIsNoop(t *testing.T) {
	t.Parallel()

	m := New[sortable.Int, string]()
	m.Insert(1, "one")

	m.Append(m)

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, "one", m.Get(1).GetOrPanic())
}
