package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checa no DNS se o domínio do e-mail existe de
// verdade (MX ou A/AAAA). Usado no cadastro de donos de salão para
// barrar e-mails digitados errado antes de criar a conta.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	// domínio sem MX ainda pode receber e-mail pelo registro A
	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
