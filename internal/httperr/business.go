package httperr

import "errors"

// BusinessError marca uma violação de regra da agenda ou do cadastro
// (conflito de horário, transição de status inválida, serviço inativo).
// O código atravessa os use cases e vira error_code na resposta HTTP.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness testa se err carrega o código dado, mesmo embrulhado.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
