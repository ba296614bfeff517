package validators

import "strings"

// NormalizePhone aceita um celular brasileiro em dígitos puros
// ("11999998888") ou com a máscara "(11) 99999-8888" e devolve os 11
// dígitos. O telefone normalizado é a chave natural do cliente.
func NormalizePhone(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '(' || r == ')' || r == '-' || r == ' ':
			// máscara
		default:
			return "", false
		}
	}

	digits := b.String()
	if len(digits) != 11 {
		return "", false
	}
	return digits, true
}
