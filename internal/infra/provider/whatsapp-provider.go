package provider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"vittasaathi/internal/config"
	"vittasaathi/internal/domain/dto"
	"vittasaathi/internal/infra/logger"
	"vittasaathi/internal/infra/metrics"
)

// MetaWhatsAppProvider sends messages through the WhatsApp Cloud API.
type MetaWhatsAppProvider struct {
	Logger     *logger.Logger
	HttpClient *http.Client
	Metrics    *metrics.Metrics
}

func NewMetaWhatsAppProvider(logger *logger.Logger, httpClient *http.Client, m *metrics.Metrics) *MetaWhatsAppProvider {
	return &MetaWhatsAppProvider{Logger: logger, HttpClient: httpClient, Metrics: m}
}

// SendTextMessage sends a text message to a recipient's phone number using
// the Meta graph API.
//
// Dependencies:
//   - Environment variables:
//   - META_GRAPH_URL: The base URL of the Meta graph API.
//   - WHATSAPP_TOKEN: The bearer token for the WhatsApp business account.
//   - WHATSAPP_PHONE_NUMBER_ID: The registered phone number id used to send messages.
func (th *MetaWhatsAppProvider) SendTextMessage(to, message string) error {
	if to == "" || message == "" {
		return fmt.Errorf("recipient (to) and message cannot be empty")
	}

	requiredConfigs := []struct {
		name  string
		value string
	}{
		{"META_GRAPH_URL", config.GetEnvOr("META_GRAPH_URL", "https://graph.facebook.com/v21.0")},
		{"WHATSAPP_TOKEN", config.GetEnvOr("WHATSAPP_TOKEN", "")},
		{"WHATSAPP_PHONE_NUMBER_ID", config.GetEnvOr("WHATSAPP_PHONE_NUMBER_ID", "")},
	}

	for _, configItem := range requiredConfigs {
		if configItem.value == "" {
			th.Logger.Error(fmt.Sprintf("%s is not set", configItem.name))
			return fmt.Errorf("%s is not set", configItem.name)
		}
	}

	graphURL := requiredConfigs[0].value
	token := requiredConfigs[1].value
	phoneNumberID := requiredConfigs[2].value

	payload, err := json.Marshal(dto.NewTextMessage(to, message))
	if err != nil {
		th.Logger.Error(fmt.Sprintf("Failed to marshal payload %v", err))
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", graphURL, phoneNumberID)
	req, err := http.NewRequest("POST", url, bytes.NewReader(payload))
	if err != nil {
		th.Logger.Error(fmt.Sprintf("Failed to create HTTP request %v", err))
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	req.Header.Set("Content-Type", "application/json")

	res, err := th.HttpClient.Do(req)
	if err != nil {
		th.Logger.Error(fmt.Sprintf("HTTP request failed %v", err))
		th.Metrics.OutboundMessages.WithLabelValues("error").Inc()
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(res.Body)
		th.Logger.Error(fmt.Sprintf("Unexpected HTTP status %s response_body %s", res.Status, string(body)))
		th.Metrics.OutboundMessages.WithLabelValues("error").Inc()
		return fmt.Errorf("unexpected HTTP status: %s", res.Status)
	}

	th.Metrics.OutboundMessages.WithLabelValues("sent").Inc()
	th.Logger.Info(fmt.Sprintf("Message sent successfully to %s", to))
	return nil
}
