package msg91

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/muhammadheryan/esports-tournament/cmd/config"
	"github.com/muhammadheryan/esports-tournament/thirdparty/sms"
)

const (
	otpPath  = "/api/v5/otp"
	flowPath = "/api/v5/flow/"
)

type client struct {
	baseURL    string
	authKey    string
	templateID string
	httpClient *http.Client
}

func newClient(cfg config.MSG91Config, httpClient *http.Client) *client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		authKey:    cfg.AuthKey,
		templateID: cfg.TemplateID,
		httpClient: httpClient,
	}
}

type apiResponse struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// APIError is a non-success answer from MSG91.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("msg91 returned status %d: %s", e.StatusCode, e.Message)
}

func (c *client) post(ctx context.Context, path string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("authkey", c.authKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return "", err
	}

	var out apiResponse
	_ = json.Unmarshal(raw, &out)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := out.Message
		if msg == "" {
			msg = string(raw)
		}
		return "", &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	// MSG91 reports some failures with a 200 and type "error"
	if out.Type == "error" {
		return "", &APIError{StatusCode: resp.StatusCode, Message: out.Message}
	}
	return out.RequestID, nil
}

// mobile strips the leading "+" MSG91 does not accept.
func mobile(phone string) string {
	return strings.TrimPrefix(phone, "+")
}

// OTPChannel delivers codes through the MSG91 OTP API.
type OTPChannel struct {
	*client
}

func NewOTPChannel(cfg config.MSG91Config, httpClient *http.Client) *OTPChannel {
	return &OTPChannel{client: newClient(cfg, httpClient)}
}

var _ sms.Sender = (*OTPChannel)(nil)

type otpPayload struct {
	TemplateID string `json:"template_id"`
	Mobile     string `json:"mobile"`
	OTP        string `json:"otp"`
	OTPExpiry  int    `json:"otp_expiry"`
}

func (c *OTPChannel) Send(ctx context.Context, msg sms.Message) (string, error) {
	expiry := 5
	if !msg.ExpiresAt.IsZero() {
		if m := int(math.Ceil(time.Until(msg.ExpiresAt).Minutes())); m > 0 {
			expiry = m
		}
	}
	return c.post(ctx, otpPath, otpPayload{
		TemplateID: c.templateID,
		Mobile:     mobile(msg.Phone),
		OTP:        msg.Code,
		OTPExpiry:  expiry,
	})
}

// FlowChannel delivers codes as a templated SMS through the MSG91 Flow API.
type FlowChannel struct {
	*client
}

func NewFlowChannel(cfg config.MSG91Config, httpClient *http.Client) *FlowChannel {
	return &FlowChannel{client: newClient(cfg, httpClient)}
}

var _ sms.Sender = (*FlowChannel)(nil)

type flowRecipient struct {
	Mobiles string `json:"mobiles"`
	OTP     string `json:"OTP"`
}

type flowPayload struct {
	TemplateID string          `json:"template_id"`
	ShortURL   string          `json:"short_url"`
	Recipients []flowRecipient `json:"recipients"`
}

func (c *FlowChannel) Send(ctx context.Context, msg sms.Message) (string, error) {
	return c.post(ctx, flowPath, flowPayload{
		TemplateID: c.templateID,
		ShortURL:   "0",
		Recipients: []flowRecipient{{Mobiles: mobile(msg.Phone), OTP: msg.Code}},
	})
}
