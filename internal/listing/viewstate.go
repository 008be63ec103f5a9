package listing

// ViewState é o estado serializável de uma listagem: busca, filtros
// exatos, flags, ordenação e página. Toda mudança de critério volta
// para a página 1; senão o usuário fica numa página vazia depois de
// estreitar o filtro.
type ViewState struct {
	Search  string            `json:"search"`
	Filters map[string]string `json:"filters"`
	Flags   map[string]bool   `json:"flags"`

	SortField string    `json:"sort_field"`
	SortDir   Direction `json:"sort_dir"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func NewViewState(limit int) ViewState {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	return ViewState{
		Filters: map[string]string{},
		Flags:   map[string]bool{},
		SortDir: Asc,
		Page:    1,
		Limit:   limit,
	}
}

func (v *ViewState) SetSearch(term string) {
	v.Search = term
	v.Page = 1
}

func (v *ViewState) SetFilter(name, value string) {
	if v.Filters == nil {
		v.Filters = map[string]string{}
	}
	v.Filters[name] = value
	v.Page = 1
}

func (v *ViewState) SetFlag(name string, on bool) {
	if v.Flags == nil {
		v.Flags = map[string]bool{}
	}
	v.Flags[name] = on
	v.Page = 1
}

// SortBy alterna a direção quando o campo repete; campo novo volta
// para ascendente. Trocar a ordenação não mexe na página.
func (v *ViewState) SortBy(field string) {
	if v.SortField == field {
		if v.SortDir == Asc {
			v.SortDir = Desc
		} else {
			v.SortDir = Asc
		}
		return
	}
	v.SortField = field
	v.SortDir = Asc
}

func (v *ViewState) SetPage(page, total int) {
	_, _, clamped, _ := Paginate(total, page, v.Limit)
	v.Page = clamped
}

// Filter devolve o valor de um filtro exato ("" quando não definido).
func (v ViewState) Filter(name string) string {
	if v.Filters == nil {
		return ""
	}
	return v.Filters[name]
}

func (v ViewState) Flag(name string) bool {
	if v.Flags == nil {
		return false
	}
	return v.Flags[name]
}
