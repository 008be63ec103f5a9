package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	Name     string
	Category string
	Active   bool
}

var services = []fakeService{
	{Name: "Corte Feminino", Category: "cabelo", Active: true},
	{Name: "Coloração", Category: "cabelo", Active: true},
	{Name: "Manicure", Category: "unhas", Active: true},
	{Name: "Pedicure", Category: "unhas", Active: false},
	{Name: "Limpeza de Pele", Category: "estetica", Active: true},
}

func nameField(s fakeService) string     { return s.Name }
func categoryField(s fakeService) string { return s.Category }

func TestIsSentinel(t *testing.T) {
	assert.True(t, IsSentinel(""))
	assert.True(t, IsSentinel("all"))
	assert.True(t, IsSentinel("todos"))
	assert.True(t, IsSentinel("Todas"))
	assert.True(t, IsSentinel("  ALL  "))

	assert.False(t, IsSentinel("cabelo"))
	assert.False(t, IsSentinel("active"))
}

func TestFilterSearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := Filter(services, Criteria[fakeService]{
		Search:       "CORTE",
		SearchFields: []func(fakeService) string{nameField},
	})

	assert.Len(t, got, 1)
	assert.Equal(t, "Corte Feminino", got[0].Name)
}

func TestFilterSearchMatchesAnyField(t *testing.T) {
	// termo só bate na categoria, não no nome
	got := Filter(services, Criteria[fakeService]{
		Search:       "unhas",
		SearchFields: []func(fakeService) string{nameField, categoryField},
	})

	assert.Len(t, got, 2)
}

func TestFilterSentinelDisablesEquals(t *testing.T) {
	for _, v := range []string{"", "all", "todos", "todas"} {
		got := Filter(services, Criteria[fakeService]{
			Equals: []EqualsFilter[fakeService]{
				{Value: v, Field: categoryField},
			},
		})
		assert.Len(t, got, len(services), "sentinela %q deveria desativar o filtro", v)
	}
}

func TestFilterEqualsIsCaseInsensitive(t *testing.T) {
	got := Filter(services, Criteria[fakeService]{
		Equals: []EqualsFilter[fakeService]{
			{Value: "CABELO", Field: categoryField},
		},
	})

	assert.Len(t, got, 2)
}

func TestFilterCriteriaComposeWithAnd(t *testing.T) {
	got := Filter(services, Criteria[fakeService]{
		Search:       "cure",
		SearchFields: []func(fakeService) string{nameField},
		Equals: []EqualsFilter[fakeService]{
			{Value: "unhas", Field: categoryField},
		},
		Flags: []FlagFilter[fakeService]{
			{Enabled: true, Field: func(s fakeService) bool { return s.Active }},
		},
	})

	// Manicure e Pedicure batem em busca+categoria, só Manicure é ativa
	assert.Len(t, got, 1)
	assert.Equal(t, "Manicure", got[0].Name)
}

func TestFilterFlagDisabledDoesNotExclude(t *testing.T) {
	got := Filter(services, Criteria[fakeService]{
		Flags: []FlagFilter[fakeService]{
			{Enabled: false, Field: func(s fakeService) bool { return s.Active }},
		},
	})

	assert.Len(t, got, len(services))
}

func TestFilterEmptyInput(t *testing.T) {
	got := Filter([]fakeService{}, Criteria[fakeService]{Search: "x"})
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
