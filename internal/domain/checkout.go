package domain

import "encoding/json"

// CreateCheckoutRequest carries the caller-supplied buyer and billing fields
// for a new gateway checkout session. Amount is a json.Number so callers may
// send either "100" or 100. Only name and amount are mandatory; the rest get
// fixed defaults before the request reaches the gateway.
type CreateCheckoutRequest struct {
	Amount   json.Number `json:"amount"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Street   string      `json:"street"`
	City     string      `json:"city"`
	State    string      `json:"state"`
	Country  string      `json:"country"`
	Postcode string      `json:"postcode"`
}

type CreateCheckoutResponse struct {
	CheckoutID string `json:"checkoutId"`
}

// Billing mirrors the gateway's billing block on a transaction result.
type Billing struct {
	Street   string `json:"street1,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country,omitempty"`
	Postcode string `json:"postcode,omitempty"`
}

// TransactionResult is the mapped form of the gateway's payment-status
// resource. It is fetched once per verification call and never persisted.
type TransactionResult struct {
	TransactionID     string
	ResultCode        string
	ResultDescription string
	Amount            string
	PaymentType       string
	CardBrand         string
	BuyerEmail        string
	BuyerName         string
	Billing           Billing
}
