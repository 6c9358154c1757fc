package observable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eventkit/core/observable"
)

func TestList_Append(t *testing.T) {
	t.Parallel()

	var list observable.List[string]

	var got []observable.Insertion[string]
	list.OnInsert().SubscribeFunc(func(e observable.Insertion[string]) {
		got = append(got, e)
	})

	list.Append("a")
	list.Append("b")

	require.Equal(t, 2, list.Len())
	assert.Equal(t, []observable.Insertion[string]{
		{Index: 0, Item: "a"},
		{Index: 1, Item: "b"},
	}, got)
	assert.Equal(t, []string{"a", "b"}, list.Values())
}

func TestList_Insert(t *testing.T) {
	t.Parallel()

	var list observable.List[string]
	list.Append("a")
	list.Append("c")

	var got []observable.Insertion[string]
	list.OnInsert().SubscribeFunc(func(e observable.Insertion[string]) {
		got = append(got, e)
	})

	list.Insert(1, "b")

	assert.Equal(t, []string{"a", "b", "c"}, list.Values())
	assert.Equal(t, []observable.Insertion[string]{{Index: 1, Item: "b"}}, got)

	list.Insert(3, "d") // inserting at Len appends
	assert.Equal(t, "d", list.At(3))
}

func TestList_RemoveAt(t *testing.T) {
	t.Parallel()

	var list observable.List[int]
	for _, v := range []int{10, 20, 30} {
		list.Append(v)
	}

	var got []observable.Removal[int]
	list.OnRemove().SubscribeFunc(func(e observable.Removal[int]) {
		got = append(got, e)
	})

	assert.Equal(t, 20, list.RemoveAt(1))
	assert.Equal(t, []int{10, 30}, list.Values())
	assert.Equal(t, []observable.Removal[int]{{Index: 1, Item: 20}}, got)
}

func TestList_Set(t *testing.T) {
	t.Parallel()

	var list observable.List[string]
	list.Append("old")

	var got []observable.Replacement[string]
	list.OnReplace().SubscribeFunc(func(e observable.Replacement[string]) {
		got = append(got, e)
	})

	assert.Equal(t, "old", list.Set(0, "new"))
	assert.Equal(t, "new", list.At(0))
	assert.Equal(t, []observable.Replacement[string]{
		{Index: 0, Old: "old", New: "new"},
	}, got)
}

func TestList_Clear(t *testing.T) {
	t.Parallel()

	var list observable.List[int]
	for _, v := range []int{1, 2, 3} {
		list.Append(v)
	}

	var got []observable.Removal[int]
	list.OnRemove().SubscribeFunc(func(e observable.Removal[int]) {
		got = append(got, e)
	})

	list.Clear()

	require.Equal(t, 0, list.Len())
	assert.Equal(t, []observable.Removal[int]{
		{Index: 2, Item: 3},
		{Index: 1, Item: 2},
		{Index: 0, Item: 1},
	}, got, "clear removes tail first")
}

func TestList_CallbackSeesNewState(t *testing.T) {
	t.Parallel()

	var list observable.List[int]

	var lenInside int
	list.OnInsert().SubscribeFunc(func(observable.Insertion[int]) {
		lenInside = list.Len()
	})

	list.Append(7)
	assert.Equal(t, 1, lenInside, "notification fires after the mutation")
}

func TestList_ObserverLifecycle(t *testing.T) {
	t.Parallel()

	var list observable.List[int]

	calls := 0
	sub := list.OnInsert().SubscribeFunc(func(observable.Insertion[int]) { calls++ })

	list.Append(1)
	require.True(t, list.OnInsert().Unsubscribe(sub))
	list.Append(2)

	assert.Equal(t, 1, calls, "unsubscribed observer hears nothing")
}

func TestList_Access(t *testing.T) {
	t.Parallel()

	var list observable.List[int]
	for _, v := range []int{5, 6, 7} {
		list.Append(v)
	}

	assert.Equal(t, 6, list.At(1))
	assert.Equal(t, 2, list.IndexFunc(func(v int) bool { return v == 7 }))
	assert.Equal(t, -1, list.IndexFunc(func(v int) bool { return v == 99 }))

	vals := list.Values()
	vals[0] = 999
	assert.Equal(t, 5, list.At(0), "Values returns a copy")

	assert.Panics(t, func() { list.At(17) })
}
