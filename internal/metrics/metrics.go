package metrics

// Reduções usadas pelo dashboard. Todas toleram coleção vazia:
// denominador zero devolve 0, nunca NaN.

func Count[T any](items []T) int {
	return len(items)
}

func CountWhere[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}

func Sum[T any](items []T, field func(T) float64) float64 {
	total := 0.0
	for _, it := range items {
		total += field(it)
	}
	return total
}

func Average[T any](items []T, field func(T) float64) float64 {
	if len(items) == 0 {
		return 0
	}
	return Sum(items, field) / float64(len(items))
}

// Rate devolve (part/total)*100, com 0 quando total é zero.
func Rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// RateOf é Rate sobre valores contínuos (ex.: margem sobre receita).
func RateOf(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}
