package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v int64) *int64 {
	return &v
}

func TestSubTreeIDs_CollectsAllDescendants(t *testing.T) {
	// 1 (electronics) -> 2 (laptops) -> 3 (gaming-laptops), 4 (books) отдельно
	categories := []Category{
		{ID: 1, Slug: "electronics"},
		{ID: 2, Slug: "laptops", ParentID: ptr(1)},
		{ID: 3, Slug: "gaming-laptops", ParentID: ptr(2)},
		{ID: 4, Slug: "books"},
	}

	ids := SubTreeIDs(categories, 1)

	assert.Len(t, ids, 3)
	assert.Contains(t, ids, int64(1))
	assert.Contains(t, ids, int64(2))
	assert.Contains(t, ids, int64(3))
	assert.NotContains(t, ids, int64(4))
}

func TestSubTreeIDs_MidTreeRoot(t *testing.T) {
	categories := []Category{
		{ID: 1},
		{ID: 2, ParentID: ptr(1)},
		{ID: 3, ParentID: ptr(2)},
	}

	ids := SubTreeIDs(categories, 2)

	assert.Len(t, ids, 2)
	assert.NotContains(t, ids, int64(1))
}

func TestSubTreeIDs_LeafCategory(t *testing.T) {
	categories := []Category{
		{ID: 1},
		{ID: 2, ParentID: ptr(1)},
	}

	ids := SubTreeIDs(categories, 2)

	assert.Equal(t, map[int64]struct{}{2: {}}, ids)
}

func TestSubTreeIDs_WideFanout(t *testing.T) {
	categories := []Category{
		{ID: 1},
		{ID: 2, ParentID: ptr(1)},
		{ID: 3, ParentID: ptr(1)},
		{ID: 4, ParentID: ptr(1)},
		{ID: 5, ParentID: ptr(3)},
	}

	ids := SubTreeIDs(categories, 1)

	assert.Len(t, ids, 5)
}

func TestSubTreeIDs_CyclicParentLinksTerminate(t *testing.T) {
	// Повреждённые данные: 2 и 3 ссылаются друг на друга.
	categories := []Category{
		{ID: 2, ParentID: ptr(3)},
		{ID: 3, ParentID: ptr(2)},
	}

	ids := SubTreeIDs(categories, 2)

	assert.Len(t, ids, 2)
}

func TestSubTreeIDs_EmptySnapshot(t *testing.T) {
	ids := SubTreeIDs(nil, 7)

	assert.Equal(t, map[int64]struct{}{7: {}}, ids)
}
