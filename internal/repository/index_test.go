package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ownerOf(s *stock) int { return s.Owner }

func TestBuildIndex(t *testing.T) {
	repo := New[*stock]("stock item")
	a := &stock{ID: 1, Name: "A", Owner: 1}
	b := &stock{ID: 2, Name: "B", Owner: 2}
	c := &stock{ID: 3, Name: "C", Owner: 1}
	for _, s := range []*stock{a, b, c} {
		require.NoError(t, repo.Add(s))
	}

	ix := BuildIndex(repo, ownerOf)

	assert.Equal(t, []*stock{a, c}, ix.GetGroup(1))
	assert.Equal(t, []*stock{b}, ix.GetGroup(2))

	empty := ix.GetGroup(3)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	assert.Equal(t, []int{1, 2}, ix.Keys())
	assert.Equal(t, 2, ix.Len())
	assert.False(t, ix.Stale())
}

func TestIndexIsNotIncremental(t *testing.T) {
	repo := New[*stock]("stock item")
	require.NoError(t, repo.Add(&stock{ID: 1, Owner: 1}))
	ix := BuildIndex(repo, ownerOf)

	require.NoError(t, repo.Add(&stock{ID: 2, Owner: 1}))

	assert.True(t, ix.Stale())
	assert.Len(t, ix.GetGroup(1), 1)

	ix.Rebuild()
	assert.False(t, ix.Stale())
	assert.Len(t, ix.GetGroup(1), 2)

	require.NoError(t, repo.Remove(1))
	assert.True(t, ix.Stale())
	ix.Rebuild()
	assert.Equal(t, []int{2}, ids(ix.GetGroup(1)))
}

func TestIndexGroupIsCopy(t *testing.T) {
	repo := New[*stock]("stock item")
	require.NoError(t, repo.Add(&stock{ID: 1, Owner: 1}))
	ix := BuildIndex(repo, ownerOf)

	group := ix.GetGroup(1)
	group[0] = &stock{ID: 99}

	assert.Equal(t, []int{1}, ids(ix.GetGroup(1)))
}

func TestIndexOnEmptyRepository(t *testing.T) {
	ix := BuildIndex(New[record]("record"), func(r record) string { return r.Note })
	assert.Empty(t, ix.Keys())
	assert.Empty(t, ix.GetGroup("anything"))
}
