// Package timezone resolve o fuso horário configurado em cada salão.
// Toda a agenda (antecedência mínima, janela do dia, carimbo de
// conclusão) é calculada no fuso do salão, nunca no do servidor.
package timezone

import "time"

// DefaultTimezone cobre salões que nunca configuraram o próprio fuso.
const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location devolve a *time.Location do salão; fuso inválido ou vazio
// cai no padrão em vez de quebrar a agenda.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

// NowIn é o relógio oficial do salão.
func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
