package gateway

// Outcome is the classification of a gateway result code.
type Outcome string

const (
	OutcomeApproved Outcome = "approved"
	OutcomeDeclined Outcome = "declined"
)

// approvedCodes are the success codes the gateway documents for live
// ("000.000.000") and test-mode ("000.100.110", "000.100.112") transactions.
var approvedCodes = map[string]struct{}{
	"000.000.000": {},
	"000.100.110": {},
	"000.100.112": {},
}

// Classify maps a gateway result code to an outcome. Every code outside the
// approved set is treated as declined, including the gateway's pending and
// manual-review ranges.
func Classify(resultCode string) Outcome {
	if _, ok := approvedCodes[resultCode]; ok {
		return OutcomeApproved
	}
	return OutcomeDeclined
}
