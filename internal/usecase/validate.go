package usecase

import (
	"regexp"
	"shop_service/internal/domain"
	"unicode/utf8"
)

const (
	msgFieldsIncorrect   = "fields incorrect"
	msgUnknownProducts   = "some product IDs do not exist"
	msgOrderCreateFailed = "order creation failed"
	msgLineItemsFailed   = "add failed"
)

var (
	// 2-50 Unicode letters or digits.
	userNameReg = regexp.MustCompile(`^[\p{L}\p{N}]{2,50}$`)
	// Local mobile number: 09 followed by 8 digits.
	telReg = regexp.MustCompile(`^09\d{8}$`)
)

const (
	maxAddressLength   = 30
	minPaymentMethodID = 1
	maxPaymentMethodID = 3
)

// validateSubmission decides well-formed vs malformed before any persistence
// is attempted. Any failure collapses into the single "fields incorrect"
// outcome; no per-field detail is surfaced.
func validateSubmission(sub domain.OrderSubmission) error {
	if !userNameReg.MatchString(sub.User.Name) {
		return domain.NewValidationError(msgFieldsIncorrect)
	}
	if !telReg.MatchString(sub.User.Tel) {
		return domain.NewValidationError(msgFieldsIncorrect)
	}
	if sub.User.Address == "" || utf8.RuneCountInString(sub.User.Address) > maxAddressLength {
		return domain.NewValidationError(msgFieldsIncorrect)
	}
	if len(sub.Orders) == 0 {
		return domain.NewValidationError(msgFieldsIncorrect)
	}
	for _, item := range sub.Orders {
		if item.ProductsID == "" || item.Quantity < 0 || item.Spec == "" || item.Colors == "" {
			return domain.NewValidationError(msgFieldsIncorrect)
		}
	}
	if sub.PaymentMethods < minPaymentMethodID || sub.PaymentMethods > maxPaymentMethodID {
		return domain.NewValidationError(msgFieldsIncorrect)
	}
	return nil
}
