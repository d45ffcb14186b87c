package renderer

import "strings"

var onesWords = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tensWords = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// AmountInWords renders an amount in English words using the Indian
// numbering system (thousand, lakh, crore), capitalized:
// 50000 -> "Fifty Thousand", 2550000 -> "Twenty Five Lakh Fifty Thousand".
func AmountInWords(n int) string {
	if n == 0 {
		return "Zero"
	}
	if n < 0 {
		return "Minus " + AmountInWords(-n)
	}

	var parts []string
	if crore := n / 10000000; crore > 0 {
		// crore is the largest named scale; the crore count recurses
		// through the same groupings, so very large amounts read as
		// "<words> Crore" with Crore repeated
		parts = append(parts, AmountInWords(crore)+" Crore")
		n %= 10000000
	}
	if lakh := n / 100000; lakh > 0 {
		parts = append(parts, belowHundred(lakh)+" Lakh")
		n %= 100000
	}
	if thousand := n / 1000; thousand > 0 {
		parts = append(parts, belowHundred(thousand)+" Thousand")
		n %= 1000
	}
	if n > 0 {
		parts = append(parts, belowThousand(n))
	}

	return strings.Join(parts, " ")
}

func belowThousand(n int) string {
	if n >= 100 {
		result := onesWords[n/100] + " Hundred"
		if rest := n % 100; rest > 0 {
			result += " " + belowHundred(rest)
		}
		return result
	}
	return belowHundred(n)
}

func belowHundred(n int) string {
	if n < 20 {
		return onesWords[n]
	}
	result := tensWords[n/10]
	if rest := n % 10; rest > 0 {
		result += " " + onesWords[rest]
	}
	return result
}
