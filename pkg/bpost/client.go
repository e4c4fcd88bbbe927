package bpost

import (
	"context"
	"encoding/base64"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/beebop1032/bpost-api-library/pkg/order"
	"github.com/beebop1032/bpost-api-library/pkg/productconfig"
	"github.com/beebop1032/bpost-api-library/pkg/shm"
	"github.com/beebop1032/bpost-api-library/pkg/transport"
)

// DefaultAPIURL is the production endpoint of the shipping manager
// service.
const DefaultAPIURL = "https://api-parcel.bpost.be/services/shm"

// Parcel weight bounds in grams.
const (
	MinWeight = 0
	MaxWeight = 30000
)

// Versioned media types for content negotiation.
const (
	contentTypeOrder        = "application/vnd.bpost.shm-order-v3.3+XML"
	contentTypeOrderUpdate  = "application/vnd.bpost.shm-orderUpdate-v3+XML"
	contentTypeLabelRequest = "application/vnd.bpost.shm-labelRequest-v3+XML"

	acceptOrder         = "application/vnd.bpost.shm-order-v3.3+XML"
	acceptProductConfig = "application/vnd.bpost.shm-productConfiguration-v3.1+XML"
	acceptLabelPDF      = "application/vnd.bpost.shm-label-pdf-v3.4+XML"
	acceptLabelImage    = "application/vnd.bpost.shm-label-image-v3.4+XML"
)

// IsValidWeight reports whether a parcel weight in grams is within the
// service's bounds.
func IsValidWeight(grams int) bool {
	return MinWeight <= grams && grams <= MaxWeight
}

// Client talks to the shipping manager service on behalf of one
// account. It is safe for concurrent use; the model objects it takes
// and returns are not.
type Client struct {
	accountID  string
	passphrase string
	apiURL     string
	locatorURL string
	caller     transport.Caller
	logger     *log.Logger
}

// Option configures a Client.
type Option func(*Client, *transport.HTTPConfig)

// WithCaller substitutes the transport, typically a test double.
func WithCaller(c transport.Caller) Option {
	return func(cl *Client, _ *transport.HTTPConfig) { cl.caller = c }
}

// WithAPIURL points the client at a non-production endpoint.
func WithAPIURL(url string) Option {
	return func(cl *Client, _ *transport.HTTPConfig) { cl.apiURL = strings.TrimRight(url, "/") }
}

// WithLocatorURL overrides the pick-up point locator endpoint.
func WithLocatorURL(url string) Option {
	return func(cl *Client, _ *transport.HTTPConfig) { cl.locatorURL = url }
}

// WithTimeout sets the per-call timeout of the default transport. It
// has no effect when a custom Caller is supplied.
func WithTimeout(d time.Duration) Option {
	return func(_ *Client, cfg *transport.HTTPConfig) { cfg.Timeout = d }
}

// WithUserAgent sets the User-Agent of the default transport.
func WithUserAgent(ua string) Option {
	return func(_ *Client, cfg *transport.HTTPConfig) { cfg.UserAgent = ua }
}

// WithLogger sets the logger used for operational warnings.
func WithLogger(l *log.Logger) Option {
	return func(cl *Client, _ *transport.HTTPConfig) { cl.logger = l }
}

// NewClient creates a client for the given account credentials.
func NewClient(accountID, passphrase string, opts ...Option) *Client {
	c := &Client{
		accountID:  accountID,
		passphrase: passphrase,
		apiURL:     DefaultAPIURL,
		locatorURL: DefaultLocatorURL,
	}
	cfg := transport.DefaultHTTPConfig()
	for _, opt := range opts {
		opt(c, cfg)
	}
	if c.caller == nil {
		c.caller = transport.NewHTTPCaller(cfg)
	}
	return c
}

// AccountID returns the account the client authenticates as.
func (c *Client) AccountID() string { return c.accountID }

func (c *Client) authorization() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.accountID+":"+c.passphrase))
}

// doCall sends one request to the account-scoped API path and maps
// non-success statuses to domain errors. Status 0 is accepted alongside
// 200/201 for parity with callers that cannot observe a status line.
func (c *Client) doCall(ctx context.Context, method, path string, headers map[string]string, body []byte) ([]byte, error) {
	if headers == nil {
		headers = map[string]string{}
	}
	headers["Authorization"] = c.authorization()

	url := c.apiURL + "/" + c.accountID + path
	resp, err := c.caller.Call(ctx, method, url, headers, body)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case 0, http.StatusOK, http.StatusCreated:
		return resp.Body, nil
	}
	return nil, mapError(resp)
}

// mapError turns a non-success response into the matching domain
// error: a structured invalid* document beats the generic status error.
func mapError(resp *transport.Response) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(resp.Body); err == nil {
		if root := doc.Root(); root != nil && strings.HasPrefix(root.Tag, "invalid") {
			sel := &InvalidSelectionError{}
			for _, child := range root.ChildElements() {
				switch child.Tag {
				case "error":
					sel.Message = child.Text()
				case "code":
					sel.Code, _ = strconv.Atoi(strings.TrimSpace(child.Text()))
				}
			}
			return sel
		}
	}

	message := ""
	if strings.Contains(resp.ContentType, "text/plain") ||
		resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound {
		message = string(resp.Body)
	}
	return &InvalidResponseError{StatusCode: resp.StatusCode, Message: message}
}

// CreateOrReplaceOrder announces an order, replacing any previous order
// with the same reference. The service confirms with an empty body.
func (c *Client) CreateOrReplaceOrder(ctx context.Context, o *order.Order) error {
	body, err := o.ToXML(c.accountID)
	if err != nil {
		return err
	}

	respBody, err := c.doCall(ctx, http.MethodPost, "/orders",
		map[string]string{"Content-Type": contentTypeOrder}, body)
	if err != nil {
		return err
	}
	if len(respBody) > 0 {
		return &InvalidResponseError{StatusCode: http.StatusOK, Message: string(respBody)}
	}
	return nil
}

// FetchOrder retrieves an announced order by its customer reference.
func (c *Client) FetchOrder(ctx context.Context, reference string) (*order.Order, error) {
	body, err := c.doCall(ctx, http.MethodGet, "/orders/"+reference,
		map[string]string{"Accept": acceptOrder}, nil)
	if err != nil {
		return nil, err
	}

	o, err := order.OrderFromXMLBytes(body)
	if err != nil {
		var unknown *shm.UnknownVariantError
		if errors.As(err, &unknown) {
			return nil, err
		}
		return nil, &InvalidXMLResponseError{Err: err}
	}
	return o, nil
}

// ModifyOrderStatus updates the status of every box of an order, e.g.
// to cancel it before printing.
func (c *Client) ModifyOrderStatus(ctx context.Context, reference, status string) error {
	normalized, err := order.CheckStatus(status)
	if err != nil {
		return err
	}

	doc := shm.NewDocument()
	root := doc.CreateElement("orderUpdate")
	root.CreateAttr("xmlns", shm.NsV3Global)
	root.CreateAttr("xmlns:xsi", shm.NsXsi)
	root.CreateElement("status").SetText(normalized)
	body, err := doc.WriteToBytes()
	if err != nil {
		return err
	}

	respBody, err := c.doCall(ctx, http.MethodPost, "/orders/"+reference,
		map[string]string{"Content-Type": contentTypeOrderUpdate}, body)
	if err != nil {
		return err
	}
	if len(respBody) > 0 {
		return &InvalidResponseError{StatusCode: http.StatusOK, Message: string(respBody)}
	}
	return nil
}

// FetchProductConfig retrieves the delivery methods and products the
// account may use.
func (c *Client) FetchProductConfig(ctx context.Context) (*productconfig.ProductConfiguration, error) {
	body, err := c.doCall(ctx, http.MethodGet, "/productconfig",
		map[string]string{"Accept": acceptProductConfig}, nil)
	if err != nil {
		return nil, err
	}

	cfg, err := productconfig.FromXMLBytes(body)
	if err != nil {
		return nil, &InvalidXMLResponseError{Err: err}
	}
	return cfg, nil
}
