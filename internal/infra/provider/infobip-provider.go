package provider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"vittasaathi/internal/config"
	"vittasaathi/internal/domain/dto"
	"vittasaathi/internal/infra/logger"
	"vittasaathi/internal/infra/metrics"
)

// InfobipWhatsAppProvider sends messages through the Infobip WhatsApp API.
type InfobipWhatsAppProvider struct {
	Logger     *logger.Logger
	HttpClient *http.Client
	Metrics    *metrics.Metrics
}

func NewInfobipWhatsAppProvider(logger *logger.Logger, httpClient *http.Client, m *metrics.Metrics) *InfobipWhatsAppProvider {
	return &InfobipWhatsAppProvider{Logger: logger, HttpClient: httpClient, Metrics: m}
}

// SendTextMessage sends a text message to a recipient's phone number using
// the Infobip API.
//
// Dependencies:
//   - Environment variables:
//   - INFOBIP_URL: The base URL of the Infobip API.
//   - WHATSAPP_PHONE_NUMBER: The registered phone number used to send messages via Infobip.
//   - INFOBIP_CLIENT_ID / INFOBIP_CLIENT_SECRET: OAuth2 client credentials.
func (th *InfobipWhatsAppProvider) SendTextMessage(to, message string) error {
	if to == "" || message == "" {
		return fmt.Errorf("recipient (to) and message cannot be empty")
	}

	requiredConfigs := []struct {
		name  string
		value string
	}{
		{"INFOBIP_URL", config.GetEnvOr("INFOBIP_URL", "")},
		{"WHATSAPP_PHONE_NUMBER", config.GetEnvOr("WHATSAPP_PHONE_NUMBER", "")},
	}

	for _, configItem := range requiredConfigs {
		if configItem.value == "" {
			th.Logger.Error(fmt.Sprintf("%s is not set", configItem.name))
			return fmt.Errorf("%s is not set", configItem.name)
		}
	}

	infoBipUrl := requiredConfigs[0].value
	from := requiredConfigs[1].value

	authToken, err := th.generateOAuth2Token()
	if err != nil {
		return err
	}

	payloadData := struct {
		From    string `json:"from"`
		To      string `json:"to"`
		Content struct {
			Text string `json:"text"`
		} `json:"content"`
	}{
		From: from,
		To:   to,
	}
	payloadData.Content.Text = message

	payload, err := json.Marshal(payloadData)
	if err != nil {
		th.Logger.Error(fmt.Sprintf("Failed to marshal payload %v", err))
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/whatsapp/1/message/text", infoBipUrl)
	req, err := http.NewRequest("POST", url, strings.NewReader(string(payload)))
	if err != nil {
		th.Logger.Error(fmt.Sprintf("Failed to create HTTP request %v", err))
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", authToken.AccessToken))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

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
	th.Logger.Info(fmt.Sprintf("Message sent successfully %s", res.Status))
	return nil
}

func (th *InfobipWhatsAppProvider) generateOAuth2Token() (*dto.TokenResponse, error) {
	infobipUrl := config.GetEnvOr("INFOBIP_URL", "")
	apiURL := fmt.Sprintf("%s/auth/1/oauth2/token", infobipUrl)

	clientID := config.GetEnvOr("INFOBIP_CLIENT_ID", "")
	clientSecret := config.GetEnvOr("INFOBIP_CLIENT_SECRET", "")
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("INFOBIP_CLIENT_ID and INFOBIP_CLIENT_SECRET must be set")
	}

	data := url.Values{}
	data.Set("client_id", clientID)
	data.Set("client_secret", clientSecret)
	data.Set("grant_type", "client_credentials")

	req, err := http.NewRequest("POST", apiURL, bytes.NewBufferString(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %v", err)
	}

	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Add("Accept", "application/json")

	resp, err := th.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected HTTP status: %d, response: %s", resp.StatusCode, string(body))
	}

	var tokenResponse dto.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return nil, fmt.Errorf("error decoding response JSON: %v", err)
	}

	return &tokenResponse, nil
}
