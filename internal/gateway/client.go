package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rhenando/hyperpay-api/internal/domain"
)

const requestTimeout = 30 * time.Second

// Error is returned for any failed gateway interaction: non-2xx status,
// transport failure, or a response missing the fields we need. Payload keeps
// the gateway's raw body so declines and config mistakes can be diagnosed
// from logs alone.
type Error struct {
	StatusCode int
	Payload    string
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("gateway returned %d: %s", e.StatusCode, e.Payload)
	}
	return fmt.Sprintf("gateway request failed: %s", e.Payload)
}

// Client talks to the payment gateway's server-to-server REST endpoints.
// It holds no state between calls.
type Client struct {
	baseURL     string
	accessToken string
	entityID    string
	httpClient  *http.Client
}

func NewClient(baseURL, accessToken, entityID string) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		entityID:    entityID,
		httpClient:  &http.Client{Timeout: requestTimeout},
	}
}

// CreateCheckout registers a checkout session with the gateway and returns
// the opaque checkout id the hosted widget attaches to.
func (c *Client) CreateCheckout(ctx context.Context, params url.Values) (string, error) {
	endpoint := c.baseURL + "/v1/checkouts"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return "", &Error{Payload: err.Error()}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	body, status, err := c.do(req)
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		return "", &Error{StatusCode: status, Payload: string(body)}
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", &Error{StatusCode: status, Payload: string(body)}
	}
	if out.ID == "" {
		return "", &Error{StatusCode: status, Payload: string(body)}
	}
	return out.ID, nil
}

// FetchResourceStatus resolves the final transaction result for a completed
// widget interaction. resourcePath is gateway-supplied and passed through
// unmodified.
func (c *Client) FetchResourceStatus(ctx context.Context, resourcePath string) (*domain.TransactionResult, error) {
	endpoint := fmt.Sprintf("%s%s?entityId=%s", c.baseURL, resourcePath, url.QueryEscape(c.entityID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &Error{Payload: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	body, status, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &Error{StatusCode: status, Payload: string(body)}
	}

	var out struct {
		ID     string `json:"id"`
		Result struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"result"`
		Amount       string `json:"amount"`
		PaymentType  string `json:"paymentType"`
		PaymentBrand string `json:"paymentBrand"`
		Customer     struct {
			GivenName string `json:"givenName"`
			Surname   string `json:"surname"`
			Email     string `json:"email"`
		} `json:"customer"`
		Billing domain.Billing `json:"billing"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &Error{StatusCode: status, Payload: string(body)}
	}

	return &domain.TransactionResult{
		TransactionID:     out.ID,
		ResultCode:        out.Result.Code,
		ResultDescription: out.Result.Description,
		Amount:            out.Amount,
		PaymentType:       out.PaymentType,
		CardBrand:         out.PaymentBrand,
		BuyerEmail:        out.Customer.Email,
		BuyerName:         strings.TrimSpace(out.Customer.GivenName + " " + out.Customer.Surname),
		Billing:           out.Billing,
	}, nil
}

func (c *Client) do(req *http.Request) ([]byte, int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &Error{Payload: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &Error{StatusCode: resp.StatusCode, Payload: err.Error()}
	}
	return body, resp.StatusCode, nil
}
