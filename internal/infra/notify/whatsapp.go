// Package notify pushes lead alerts to the sales desk over WhatsApp
// template messages. It is an optional channel: missing configuration
// disables it without affecting lead capture.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ironlady/leadbot/internal/infra/queue"
)

type WhatsAppClient struct {
	accessToken string
	phoneID     string
	salesNumber string
	template    string
	baseURL     string
}

func NewWhatsAppClient() *WhatsAppClient {
	return &WhatsAppClient{
		accessToken: os.Getenv("WHATSAPP_ACCESS_TOKEN"),
		phoneID:     os.Getenv("WHATSAPP_PHONE_ID"),
		salesNumber: os.Getenv("WHATSAPP_SALES_NUMBER"),
		template:    os.Getenv("WHATSAPP_LEAD_TEMPLATE"),
		baseURL:     "https://graph.facebook.com/v18.0",
	}
}

func (c *WhatsAppClient) Configured() bool {
	return c.accessToken != "" && c.phoneID != "" && c.salesNumber != ""
}

type sendMessageResponse struct {
	Contacts []struct {
		Input string `json:"input"`
		WaID  string `json:"wa_id"`
	} `json:"contacts"`
	Error *errorResponse `json:"error"`
}

type errorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type"`
}

func (c *WhatsAppClient) NotifyLead(ctx context.Context, p queue.LeadCapturedPayload) error {
	if !c.Configured() {
		return fmt.Errorf("whatsapp not configured")
	}

	template := c.template
	if template == "" {
		template = "lead_alert"
	}

	payload := map[string]interface{}{
		"messaging_product": "whatsapp",
		"recipient_type":    "individual",
		"to":                c.salesNumber,
		"type":              "template",
		"template": map[string]interface{}{
			"name": template,
			"language": map[string]string{
				"code": "en",
			},
			"components": []map[string]interface{}{
				{
					"type":       "body",
					"parameters": textParameters(p.Name, p.Email, p.Phone),
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("whatsapp api error: %d: %s", resp.StatusCode, string(respBody))
	}

	var result sendMessageResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return err
	}
	if result.Error != nil {
		return fmt.Errorf("whatsapp: %s (code %d)", result.Error.Message, result.Error.Code)
	}

	log.Info().Str("lead_id", p.LeadID).Msg("whatsapp: lead alert sent")
	return nil
}

func textParameters(params ...string) []map[string]string {
	result := make([]map[string]string, 0, len(params))
	for _, param := range params {
		result = append(result, map[string]string{
			"type": "text",
			"text": param,
		})
	}
	return result
}
