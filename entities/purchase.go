package entities

// PurchaseRequest is the raw client payload. CardExpiryMonth and
// CardExpiryYear are pointers so that an absent field is distinguishable
// from a zero. DisclaimerAccepted is deliberately untyped: anything other
// than the JSON boolean true (a string "true" included) must come back as a
// field error, not as an unparseable request.
type PurchaseRequest struct {
	Gig                string `json:"gig"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	CardNumber         string `json:"cardNumber"`
	CardExpiryMonth    *int   `json:"cardExpiryMonth"`
	CardExpiryYear     *int   `json:"cardExpiryYear"`
	CardCVC            string `json:"cardCVC"`
	DisclaimerAccepted any    `json:"disclaimerAccepted"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
