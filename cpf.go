package main

// ValidateCPF aplica o algoritmo padrão dos dois dígitos verificadores sobre um
// CPF de 11 dígitos, rejeitando sequências de um único dígito repetido.
// Pontuação e traços são ignorados.
func ValidateCPF(cpf string) bool {
	digits := make([]int, 0, 11)
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	if len(digits) != 11 {
		return false
	}

	allEqual := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	return checkDigit(digits, 10) == digits[9] && checkDigit(digits, 11) == digits[10]
}

// checkDigit calcula um dígito verificador com pesos decrescentes a partir de weight
func checkDigit(digits []int, weight int) int {
	sum := 0
	for i := 0; i < weight-1; i++ {
		sum += digits[i] * (weight - i)
	}
	return sum * 10 % 11 % 10
}
