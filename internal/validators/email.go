package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid confere se o domínio do e-mail existe de fato,
// via registro MX ou, na falta dele, A/AAAA. Serve para barrar domínios
// digitados errado no cadastro, não para validar a caixa em si.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := strings.ToLower(email[at+1:])

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
