package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// SMSClient sends transactional texts through the Mobizon gateway, with a
// dry-run mode for local setups without an API key.
type SMSClient struct {
	ApiKey string
	Sender string // optional sender id
	DryRun bool
}

type SendSMSResponse struct {
	Code int `json:"code"`
	Data struct {
		MessageID string `json:"messageId"`
	} `json:"data"`
}

func NewSMSClient(apiKey, sender string, dryRun bool) *SMSClient {
	return &SMSClient{ApiKey: apiKey, Sender: sender, DryRun: dryRun}
}

func (c *SMSClient) SendSMS(to, text string) (*SendSMSResponse, error) {
	if c.DryRun || c.ApiKey == "" || c.ApiKey == "dry-run" {
		fmt.Printf("[sms][dry-run] to=%s sender=%q text=%q\n", to, c.Sender, text)
		return &SendSMSResponse{Code: 0}, nil
	}

	apiURL := "https://api.mobizon.kz/service/message/sendsmsmessage"

	form := url.Values{
		"apiKey":    {c.ApiKey},
		"recipient": {to},
		"text":      {text},
	}
	if c.Sender != "" {
		form.Set("from", c.Sender)
	}

	resp, err := http.PostForm(apiURL, form)
	if err != nil {
		return nil, fmt.Errorf("send SMS request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read SMS response: %w", err)
	}

	var out SendSMSResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode SMS response: %w", err)
	}
	if out.Code != 0 {
		return &out, fmt.Errorf("SMS gateway returned code %d", out.Code)
	}
	return &out, nil
}
