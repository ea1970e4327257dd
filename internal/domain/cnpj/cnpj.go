// Package cnpj valida e normaliza o CNPJ (Cadastro Nacional da Pessoa Jurídica).
package cnpj

import "strings"

// Pesos dos dois dígitos verificadores, conforme a Receita Federal.
var (
	pesosPrimeiroDV = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	pesosSegundoDV  = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Normalize remove pontuação e devolve apenas os dígitos do CNPJ.
// "33.000.167/0001-01" -> "33000167000101".
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Valid informa se o CNPJ é válido. Aceita tanto a forma pontuada
// quanto a forma só-dígitos; sequências de um mesmo dígito são rejeitadas.
func Valid(raw string) bool {
	digits := Normalize(raw)
	if len(digits) != 14 {
		return false
	}
	if allSame(digits) {
		return false
	}
	dv1 := checkDigit(digits[:12], pesosPrimeiroDV)
	if int(digits[12]-'0') != dv1 {
		return false
	}
	dv2 := checkDigit(digits[:13], pesosSegundoDV)
	return int(digits[13]-'0') == dv2
}

// checkDigit calcula um dígito verificador: soma ponderada módulo 11,
// resultado < 2 vira 0.
func checkDigit(digits string, pesos []int) int {
	sum := 0
	for i, r := range digits {
		sum += int(r-'0') * pesos[i]
	}
	resto := sum % 11
	if resto < 2 {
		return 0
	}
	return 11 - resto
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
