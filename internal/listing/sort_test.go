package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeRow struct {
	Name   string
	Rating *float64
	Seq    int
}

func ratings(v float64) *float64 { return &v }

func TestSortAscendingAndDescending(t *testing.T) {
	rows := []fakeRow{
		{Name: "Carla"},
		{Name: "ana"},
		{Name: "Bruno"},
	}

	byName := ByString(func(r fakeRow) string { return r.Name })

	Sort(rows, byName, Asc)
	assert.Equal(t, []string{"ana", "Bruno", "Carla"}, names(rows))

	Sort(rows, byName, Desc)
	assert.Equal(t, []string{"Carla", "Bruno", "ana"}, names(rows))
}

func TestSortIsStableOnTies(t *testing.T) {
	rows := []fakeRow{
		{Name: "a", Rating: ratings(5), Seq: 1},
		{Name: "b", Rating: ratings(3), Seq: 2},
		{Name: "c", Rating: ratings(5), Seq: 3},
		{Name: "d", Rating: ratings(5), Seq: 4},
	}

	Sort(rows, ByFloat(func(r fakeRow) float64 { return FloatOrZero(r.Rating) }), Desc)

	// empatados em 5 preservam a ordem de entrada
	assert.Equal(t, []int{1, 3, 4, 2}, seqs(rows))
}

func TestSortNilRatingSortsAsZero(t *testing.T) {
	rows := []fakeRow{
		{Name: "com nota", Rating: ratings(4.5)},
		{Name: "sem nota", Rating: nil},
	}

	Sort(rows, ByFloat(func(r fakeRow) float64 { return FloatOrZero(r.Rating) }), Asc)

	assert.Equal(t, "sem nota", rows[0].Name)
}

func TestSortNilComparatorIsNoop(t *testing.T) {
	rows := []fakeRow{{Name: "b"}, {Name: "a"}}
	Sort(rows, nil, Asc)
	assert.Equal(t, []string{"b", "a"}, names(rows))
}

func TestByTime(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	type ev struct{ At time.Time }
	rows := []ev{
		{At: base.Add(2 * time.Hour)},
		{At: base},
		{At: base.Add(time.Hour)},
	}

	Sort(rows, ByTime(func(e ev) time.Time { return e.At }), Asc)

	assert.Equal(t, base, rows[0].At)
	assert.Equal(t, base.Add(2*time.Hour), rows[2].At)
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, Desc, ParseDirection("desc"))
	assert.Equal(t, Desc, ParseDirection(" DESC "))
	assert.Equal(t, Asc, ParseDirection("asc"))
	assert.Equal(t, Asc, ParseDirection(""))
	assert.Equal(t, Asc, ParseDirection("garbage"))
}

func names(rows []fakeRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func seqs(rows []fakeRow) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.Seq
	}
	return out
}
