package services

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

type QueryAIService struct {
	Logger     *logger.Logger
	HttpClient *http.Client
	Metrics    *metrics.Metrics
}

func NewQueryAIService(logger *logger.Logger, httpClient *http.Client, m *metrics.Metrics) *QueryAIService {
	return &QueryAIService{
		Logger:     logger,
		HttpClient: httpClient,
		Metrics:    m,
	}
}

// ExecuteQueryAI sends the unmatched utterance to the inference service and
// returns its structured result. The HTTP client carries the timeout, so a
// slow service surfaces as an error rather than a hung turn.
func (th *QueryAIService) ExecuteQueryAI(queryText string, locale string, messageContext string) (dto.QueryAIResponse, error) {
	queryAIHost := config.GetEnvOr("QUERY_AI_API_HOST", "")
	if queryAIHost == "" {
		err := fmt.Errorf("QUERY_AI_API_HOST environment variable not set")
		th.Logger.Error(err.Error())
		return dto.QueryAIResponse{}, err
	}

	payload := dto.QueryAIRequest{
		QueryText:      queryText,
		Locale:         locale,
		MessageContext: messageContext,
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		th.Logger.Error(fmt.Sprintf("Failed to marshal payload: %s", err.Error()))
		return dto.QueryAIResponse{}, err
	}

	resp, err := th.HttpClient.Post(queryAIHost+"/query", "application/json", bytes.NewBuffer(payloadBytes))
	if err != nil {
		th.Logger.Error(fmt.Sprintf("Failed to send POST request: %s", err.Error()))
		th.Metrics.AIFallbackRequests.WithLabelValues("error").Inc()
		return dto.QueryAIResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		th.Logger.Error(fmt.Sprintf("Unexpected inference status: %s", resp.Status))
		th.Metrics.AIFallbackRequests.WithLabelValues("error").Inc()
		return dto.QueryAIResponse{}, fmt.Errorf("unexpected inference status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		th.Logger.Error(fmt.Sprintf("Failed to read response body: %s", err.Error()))
		th.Metrics.AIFallbackRequests.WithLabelValues("error").Inc()
		return dto.QueryAIResponse{}, err
	}

	var queryResponse dto.QueryAIResponse
	if err := json.Unmarshal(body, &queryResponse); err != nil {
		th.Logger.Error(fmt.Sprintf("Failed to unmarshal response body: %s", err.Error()))
		th.Metrics.AIFallbackRequests.WithLabelValues("error").Inc()
		return dto.QueryAIResponse{}, fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	th.Metrics.AIFallbackRequests.WithLabelValues("ok").Inc()
	return queryResponse, nil
}
