package listing

import "strings"

// Valores de filtro que significam "sem filtro" para aquele critério.
var sentinels = map[string]struct{}{
	"":      {},
	"all":   {},
	"todos": {},
	"todas": {},
}

func IsSentinel(v string) bool {
	_, ok := sentinels[strings.ToLower(strings.TrimSpace(v))]
	return ok
}

// EqualsFilter exige igualdade exata (case-insensitive) entre o valor
// selecionado e o campo do registro. Sentinela desativa o critério.
type EqualsFilter[T any] struct {
	Value string
	Field func(T) string
}

// FlagFilter exige campo booleano verdadeiro quando Enabled.
// Enabled=false significa critério ignorado, não exclusão.
type FlagFilter[T any] struct {
	Enabled bool
	Field   func(T) bool
}

// Criteria é o conjunto de filtros ativos de uma listagem.
// Matches aplica AND lógico entre todos os critérios ativos.
type Criteria[T any] struct {
	Search       string
	SearchFields []func(T) string
	Equals       []EqualsFilter[T]
	Flags        []FlagFilter[T]
}

func (cr Criteria[T]) Matches(rec T) bool {

	term := strings.ToLower(strings.TrimSpace(cr.Search))
	if term != "" && len(cr.SearchFields) > 0 {
		found := false
		for _, field := range cr.SearchFields {
			if strings.Contains(strings.ToLower(field(rec)), term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for _, eq := range cr.Equals {
		if IsSentinel(eq.Value) {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(eq.Value), strings.TrimSpace(eq.Field(rec))) {
			return false
		}
	}

	for _, fl := range cr.Flags {
		if fl.Enabled && !fl.Field(rec) {
			return false
		}
	}

	return true
}

// Filter devolve os registros que passam por todos os critérios.
func Filter[T any](items []T, cr Criteria[T]) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if cr.Matches(it) {
			out = append(out, it)
		}
	}
	return out
}
