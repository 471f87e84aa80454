package gateway

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rhenando/hyperpay-api/internal/domain"
)

// ErrValidation marks caller input errors so the HTTP layer can answer 400
// without having issued any gateway call.
var ErrValidation = errors.New("invalid checkout request")

// Defaults applied to optional billing fields the caller left blank. The
// gateway rejects checkouts with an incomplete billing block, so a complete
// placeholder address is sent instead.
const (
	defaultStreet   = "King Fahad Road"
	defaultCity     = "Riyadh"
	defaultState    = "Riyadh"
	defaultCountry  = "SA"
	defaultPostcode = "12345"
	defaultEmail    = "buyer@example.com"
)

// BuildCheckoutParams normalizes a caller request into the full parameter
// set the gateway's checkout-creation endpoint expects: validated amount and
// name, defaulted billing fields, a per-call merchant transaction id, and
// the fixed 3-D-Secure-v2 / standing-instruction parameters.
func BuildCheckoutParams(req domain.CreateCheckoutRequest, entityID, currency string) (url.Values, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	rawAmount := strings.TrimSpace(req.Amount.String())
	if rawAmount == "" {
		return nil, fmt.Errorf("%w: amount is required", ErrValidation)
	}
	amount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: amount must be numeric", ErrValidation)
	}

	params := url.Values{}
	params.Set("entityId", entityID)
	params.Set("amount", fmt.Sprintf("%.2f", amount))
	params.Set("currency", currency)
	params.Set("paymentType", "DB")
	params.Set("merchantTransactionId", newMerchantTransactionID())

	params.Set("customer.givenName", name)
	params.Set("customer.email", valueOrDefault(req.Email, defaultEmail))

	params.Set("billing.street1", valueOrDefault(req.Street, defaultStreet))
	params.Set("billing.city", valueOrDefault(req.City, defaultCity))
	params.Set("billing.state", valueOrDefault(req.State, defaultState))
	params.Set("billing.country", valueOrDefault(req.Country, defaultCountry))
	params.Set("billing.postcode", valueOrDefault(req.Postcode, defaultPostcode))

	params.Set("customParameters[3DS2_enrolled]", "true")
	params.Set("customParameters[3DS2_scenario]", "02")
	params.Set("standingInstruction.mode", "INITIAL")
	params.Set("standingInstruction.type", "UNSCHEDULED")

	return params, nil
}

// newMerchantTransactionID is unique per call for the lifetime of the
// process; the gateway only requires it not to repeat within a batch.
func newMerchantTransactionID() string {
	return fmt.Sprintf("mtx-%d", time.Now().UnixNano())
}

func valueOrDefault(v, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return def
}
