package listing

const DefaultPageSize = 10

// Paginate calcula os limites [lo, hi) da página pedida sobre uma
// coleção de total itens. page é 1-indexed e sempre é grampeado para
// [1, totalPages]; coleção vazia devolve página 1 com fatia vazia.
func Paginate(total, page, size int) (lo, hi, clampedPage, totalPages int) {
	if size <= 0 {
		size = DefaultPageSize
	}

	totalPages = (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	lo = (page - 1) * size
	hi = lo + size
	if lo > total {
		lo = total
	}
	if hi > total {
		hi = total
	}

	return lo, hi, page, totalPages
}

// PageSlice aplica Paginate e devolve a fatia correspondente.
func PageSlice[T any](items []T, page, size int) ([]T, int, int) {
	lo, hi, clamped, totalPages := Paginate(len(items), page, size)
	return items[lo:hi], clamped, totalPages
}
