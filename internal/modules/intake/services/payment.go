package services

import "regexp"

// paymentPattern matches the confirmation words clients use after
// paying: "paguei", "pagamento feito", "segue o comprovativo", etc.
var paymentPattern = regexp.MustCompile(`(?i)\b(pag(o|a|uei|amos|amento)|comprov(ativo|ante)|recibo|feito|transfer(i|encia|ência))\b`)

// isPaymentConfirmation reports whether the text looks like a
// payment confirmation.
func isPaymentConfirmation(text string) bool {
	return paymentPattern.MatchString(text)
}
