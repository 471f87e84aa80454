package gateway

import (
	"encoding/json"
	"testing"

	"github.com/rhenando/hyperpay-api/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestBuildCheckoutParams_Validation(t *testing.T) {
	var tests = []struct {
		name string
		req  domain.CreateCheckoutRequest
	}{
		{name: "missing name", req: domain.CreateCheckoutRequest{Amount: json.Number("100")}},
		{name: "blank name", req: domain.CreateCheckoutRequest{Amount: json.Number("100"), Name: "   "}},
		{name: "missing amount", req: domain.CreateCheckoutRequest{Name: "Ali"}},
		{name: "non numeric amount", req: domain.CreateCheckoutRequest{Amount: json.Number("abc"), Name: "Ali"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			params, err := BuildCheckoutParams(tt.req, "entity-1", "SAR")
			require.Error(t, err)
			require.ErrorIs(t, err, ErrValidation)
			require.Nil(t, params)
		})
	}
}

func TestBuildCheckoutParams_Defaults(t *testing.T) {
	req := domain.CreateCheckoutRequest{
		Amount: json.Number("100"),
		Name:   "Ali",
	}

	params, err := BuildCheckoutParams(req, "entity-1", "SAR")
	require.NoError(t, err)

	require.Equal(t, "100.00", params.Get("amount"))
	require.Equal(t, "Ali", params.Get("customer.givenName"))
	require.Equal(t, "buyer@example.com", params.Get("customer.email"))
	require.Equal(t, "King Fahad Road", params.Get("billing.street1"))
	require.Equal(t, "Riyadh", params.Get("billing.city"))
	require.Equal(t, "Riyadh", params.Get("billing.state"))
	require.Equal(t, "SA", params.Get("billing.country"))
	require.Equal(t, "12345", params.Get("billing.postcode"))
}

func TestBuildCheckoutParams_RoundTrip(t *testing.T) {
	req := domain.CreateCheckoutRequest{
		Amount:   json.Number("49.9"),
		Name:     "  Sara Alamri ",
		Email:    "sara@shop.example",
		Street:   "Olaya Street",
		City:     "Jeddah",
		State:    "Makkah",
		Country:  "SA",
		Postcode: "23456",
	}

	params, err := BuildCheckoutParams(req, "entity-1", "SAR")
	require.NoError(t, err)

	require.Equal(t, "49.90", params.Get("amount"))
	require.Equal(t, "Sara Alamri", params.Get("customer.givenName"))
	require.Equal(t, "sara@shop.example", params.Get("customer.email"))
	require.Equal(t, "Olaya Street", params.Get("billing.street1"))
	require.Equal(t, "Jeddah", params.Get("billing.city"))
	require.Equal(t, "Makkah", params.Get("billing.state"))
	require.Equal(t, "SA", params.Get("billing.country"))
	require.Equal(t, "23456", params.Get("billing.postcode"))
}

func TestBuildCheckoutParams_FixedParameters(t *testing.T) {
	req := domain.CreateCheckoutRequest{Amount: json.Number("10"), Name: "Ali"}

	params, err := BuildCheckoutParams(req, "entity-1", "SAR")
	require.NoError(t, err)

	require.Equal(t, "entity-1", params.Get("entityId"))
	require.Equal(t, "SAR", params.Get("currency"))
	require.Equal(t, "DB", params.Get("paymentType"))
	require.Equal(t, "true", params.Get("customParameters[3DS2_enrolled]"))
	require.Equal(t, "02", params.Get("customParameters[3DS2_scenario]"))
	require.Equal(t, "INITIAL", params.Get("standingInstruction.mode"))
	require.Equal(t, "UNSCHEDULED", params.Get("standingInstruction.type"))
	require.NotEmpty(t, params.Get("merchantTransactionId"))
}

func TestBuildCheckoutParams_MerchantTransactionIDUniquePerCall(t *testing.T) {
	req := domain.CreateCheckoutRequest{Amount: json.Number("10"), Name: "Ali"}

	first, err := BuildCheckoutParams(req, "entity-1", "SAR")
	require.NoError(t, err)
	second, err := BuildCheckoutParams(req, "entity-1", "SAR")
	require.NoError(t, err)

	require.NotEqual(t, first.Get("merchantTransactionId"), second.Get("merchantTransactionId"))
}
