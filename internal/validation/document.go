package validation

import "strings"

// OnlyDigits strips every non-digit character from s.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF checks the 11-digit CPF checksum. Sequences of a single repeated
// digit are rejected even though their check digits compute correctly.
func ValidCPF(raw string) bool {
	cpf := OnlyDigits(raw)
	if len(cpf) != 11 {
		return false
	}

	repeated := true
	for i := 1; i < 11; i++ {
		if cpf[i] != cpf[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return false
	}

	if cpfCheckDigit(cpf, 9) != int(cpf[9]-'0') {
		return false
	}
	return cpfCheckDigit(cpf, 10) == int(cpf[10]-'0')
}

// cpfCheckDigit computes the check digit over the first n digits of cpf,
// using weights n+1 down to 2. A remainder of 10 counts as 0.
func cpfCheckDigit(cpf string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(cpf[i]-'0') * (n + 1 - i)
	}
	digit := (sum * 10) % 11
	if digit == 10 {
		digit = 0
	}
	return digit
}

// ValidCNPJ checks only the digit count. The source system never applied a
// CNPJ checksum, and that behavior is kept for compatibility.
func ValidCNPJ(raw string) bool {
	return len(OnlyDigits(raw)) >= 14
}
