package listing

import (
	"sort"
	"strings"
	"time"
)

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

// Comparator devolve -1/0/1 para ordem ascendente do campo.
type Comparator[T any] func(a, b T) int

func ByString[T any](field func(T) string) Comparator[T] {
	return func(a, b T) int {
		av := strings.ToLower(field(a))
		bv := strings.ToLower(field(b))
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	}
}

// ByFloat trata ponteiro nulo / campo ausente como zero.
func ByFloat[T any](field func(T) float64) Comparator[T] {
	return func(a, b T) int {
		av, bv := field(a), field(b)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	}
}

func ByInt[T any](field func(T) int) Comparator[T] {
	return ByFloat(func(t T) float64 { return float64(field(t)) })
}

func ByTime[T any](field func(T) time.Time) Comparator[T] {
	return func(a, b T) int {
		av, bv := field(a), field(b)
		switch {
		case av.Before(bv):
			return -1
		case av.After(bv):
			return 1
		default:
			return 0
		}
	}
}

// FloatOrZero é a política central de valor ausente: rating nulo ordena como 0.
func FloatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Sort ordena in-place de forma estável; empates preservam a ordem
// de entrada (resolução deliberada da ambiguidade da origem).
func Sort[T any](items []T, cmp Comparator[T], dir Direction) {
	if cmp == nil {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		r := cmp(items[i], items[j])
		if dir == Desc {
			return r > 0
		}
		return r < 0
	})
}
