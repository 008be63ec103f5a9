package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		minStock int
		want     Status
	}{
		{"zerado", 0, 10, StatusOut},
		{"negativo conta como esgotado", -3, 10, StatusOut},
		{"igual ao minimo", 10, 10, StatusLow},
		{"abaixo do minimo", 5, 10, StatusLow},
		{"acima do minimo", 15, 10, StatusAvailable},
		{"minimo zero com estoque", 1, 0, StatusAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.quantity, tt.minStock))
		})
	}
}
