// Package brdoc validates and formats Brazilian client documents:
// CPF numbers and phone numbers.
package brdoc

import "strings"

// Digits strips every non-digit rune from s.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidCPF reports whether s is a valid CPF. Formatting characters
// are ignored; the two check digits are verified.
func IsValidCPF(s string) bool {
	cpf := Digits(s)
	if len(cpf) != 11 {
		return false
	}

	// CPFs made of a single repeated digit pass the checksum but are
	// not assignable.
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

	if checkDigit(cpf, 9) != int(cpf[9]-'0') {
		return false
	}
	return checkDigit(cpf, 10) == int(cpf[10]-'0')
}

// checkDigit computes the CPF verification digit over the first n
// digits, weighted n+1 down to 2, mod 11.
func checkDigit(cpf string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(cpf[i]-'0') * (n + 1 - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}

// FormatCPF renders a valid-length CPF as 000.000.000-00. Input that
// is not 11 digits is returned unchanged.
func FormatCPF(s string) string {
	cpf := Digits(s)
	if len(cpf) != 11 {
		return s
	}
	return cpf[0:3] + "." + cpf[3:6] + "." + cpf[6:9] + "-" + cpf[9:11]
}

// IsValidPhone reports whether s is a plausible Brazilian phone:
// 10 digits (landline) or 11 digits (mobile, third digit 9),
// with a valid two-digit area code.
func IsValidPhone(s string) bool {
	phone := Digits(s)
	switch len(phone) {
	case 10:
		// landline
	case 11:
		if phone[2] != '9' {
			return false
		}
	default:
		return false
	}
	// area codes run 11-99, never starting with 0
	return phone[0] != '0' && !(phone[0] == '1' && phone[1] == '0')
}

// FormatPhone renders a phone as (11) 98765-4321 or (11) 3456-7890.
// Input of unexpected length is returned unchanged.
func FormatPhone(s string) string {
	phone := Digits(s)
	switch len(phone) {
	case 11:
		return "(" + phone[0:2] + ") " + phone[2:7] + "-" + phone[7:11]
	case 10:
		return "(" + phone[0:2] + ") " + phone[2:6] + "-" + phone[6:10]
	default:
		return s
	}
}
