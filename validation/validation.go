package validation

import (
	"fmt"
	"net/mail"
	"regexp"

	"gigs/entities"
)

const mandatoryMessage = "mandatory field"

var cvcPattern = regexp.MustCompile(`^[0-9]{3,4}$`)

type Validator struct {
	minExpiryYear int
	maxExpiryYear int
}

func NewValidator(minExpiryYear, maxExpiryYear int) Validator {
	if minExpiryYear > maxExpiryYear {
		panic("invalid card expiry year range")
	}
	return Validator{
		minExpiryYear: minExpiryYear,
		maxExpiryYear: maxExpiryYear,
	}
}

// Validate checks every field of the request and returns one error per
// violated rule, in field order. It never stops at the first failure, does no
// I/O, and is safe to call any number of times on the same request.
//
// Whether the expiry date is in the future, and whether the gig actually
// exists, are not checked here. Existence is the catalog lookup's job.
func (v Validator) Validate(request entities.PurchaseRequest) []entities.FieldError {
	var errs []entities.FieldError

	if request.Gig == "" {
		errs = append(errs, entities.FieldError{Field: "gig", Message: mandatoryMessage})
	}

	if request.Name == "" {
		errs = append(errs, entities.FieldError{Field: "name", Message: mandatoryMessage})
	}

	if request.Email == "" {
		errs = append(errs, entities.FieldError{Field: "email", Message: mandatoryMessage})
	} else if !validEmail(request.Email) {
		errs = append(errs, entities.FieldError{Field: "email", Message: "not a valid email address"})
	}

	if request.CardNumber == "" {
		errs = append(errs, entities.FieldError{Field: "cardNumber", Message: mandatoryMessage})
	} else if !validCardNumber(request.CardNumber) {
		errs = append(errs, entities.FieldError{Field: "cardNumber", Message: "not a valid card number"})
	}

	if request.CardExpiryMonth == nil {
		errs = append(errs, entities.FieldError{Field: "cardExpiryMonth", Message: mandatoryMessage})
	} else if *request.CardExpiryMonth < 1 || *request.CardExpiryMonth > 12 {
		errs = append(errs, entities.FieldError{Field: "cardExpiryMonth", Message: "must be between 1 and 12"})
	}

	if request.CardExpiryYear == nil {
		errs = append(errs, entities.FieldError{Field: "cardExpiryYear", Message: mandatoryMessage})
	} else if *request.CardExpiryYear < v.minExpiryYear || *request.CardExpiryYear > v.maxExpiryYear {
		errs = append(errs, entities.FieldError{
			Field:   "cardExpiryYear",
			Message: fmt.Sprintf("must be between %d and %d", v.minExpiryYear, v.maxExpiryYear),
		})
	}

	if request.CardCVC == "" {
		errs = append(errs, entities.FieldError{Field: "cardCVC", Message: mandatoryMessage})
	} else if !cvcPattern.MatchString(request.CardCVC) {
		errs = append(errs, entities.FieldError{Field: "cardCVC", Message: "must be 3 or 4 digits"})
	}

	if request.DisclaimerAccepted == nil {
		errs = append(errs, entities.FieldError{Field: "disclaimerAccepted", Message: mandatoryMessage})
	} else if accepted, ok := request.DisclaimerAccepted.(bool); !ok || !accepted {
		errs = append(errs, entities.FieldError{Field: "disclaimerAccepted", Message: "must be accepted"})
	}

	return errs
}

func validEmail(address string) bool {
	parsed, err := mail.ParseAddress(address)
	if err != nil {
		return false
	}

	// reject display-name forms like "Alice <alice@example.com>"
	return parsed.Address == address
}

// validCardNumber runs the Luhn checksum over 12 to 19 digits. Shape only:
// the card is never charged.
func validCardNumber(number string) bool {
	if len(number) < 12 || len(number) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}

		digit := int(c - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return sum%10 == 0
}
