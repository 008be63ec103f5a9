package stock

// Status de estoque é sempre derivado de quantidade/mínimo na leitura.
// Nunca persistir nem confiar em um status gravado: quantidade muda e
// o valor gravado apodrece.

type Status string

const (
	StatusOut       Status = "esgotado"
	StatusLow       Status = "baixo_estoque"
	StatusAvailable Status = "disponivel"
)

func Derive(quantity, minStock int) Status {
	switch {
	case quantity <= 0:
		return StatusOut
	case quantity <= minStock:
		return StatusLow
	default:
		return StatusAvailable
	}
}
