package listing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViewStateDefaults(t *testing.T) {
	v := NewViewState(0)

	assert.Equal(t, 1, v.Page)
	assert.Equal(t, DefaultPageSize, v.Limit)
	assert.Equal(t, Asc, v.SortDir)
}

func TestCriteriaChangesResetPage(t *testing.T) {
	v := NewViewState(10)
	v.Page = 4

	v.SetSearch("corte")
	assert.Equal(t, 1, v.Page)

	v.Page = 4
	v.SetFilter("status", "active")
	assert.Equal(t, 1, v.Page)

	v.Page = 4
	v.SetFlag("active_only", true)
	assert.Equal(t, 1, v.Page)
}

func TestSortByTogglesDirectionOnSameField(t *testing.T) {
	v := NewViewState(10)

	v.SortBy("name")
	assert.Equal(t, "name", v.SortField)
	assert.Equal(t, Asc, v.SortDir)

	v.SortBy("name")
	assert.Equal(t, Desc, v.SortDir)

	v.SortBy("name")
	assert.Equal(t, Asc, v.SortDir)

	// campo novo sempre começa ascendente
	v.SortBy("name")
	v.SortBy("price")
	assert.Equal(t, "price", v.SortField)
	assert.Equal(t, Asc, v.SortDir)
}

func TestSortByDoesNotResetPage(t *testing.T) {
	v := NewViewState(10)
	v.Page = 3

	v.SortBy("name")
	assert.Equal(t, 3, v.Page)
}

func TestSetPageClampsToRange(t *testing.T) {
	v := NewViewState(10)

	v.SetPage(99, 25)
	assert.Equal(t, 3, v.Page)

	v.SetPage(0, 25)
	assert.Equal(t, 1, v.Page)

	v.SetPage(5, 0)
	assert.Equal(t, 1, v.Page)
}

func TestViewStateRoundTripsAsJSON(t *testing.T) {
	v := NewViewState(20)
	v.SetSearch("ana")
	v.SetFilter("status", "active")
	v.SetFlag("active_only", true)
	v.SortBy("rating")
	v.SortBy("rating")

	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var got ViewState
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, "ana", got.Search)
	assert.Equal(t, "active", got.Filter("status"))
	assert.True(t, got.Flag("active_only"))
	assert.Equal(t, "rating", got.SortField)
	assert.Equal(t, Desc, got.SortDir)
	assert.Equal(t, 1, got.Page)
}
