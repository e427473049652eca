package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"vittasaathi/internal/domain/dto"
	Iservices "vittasaathi/internal/domain/interfaces/services"
	"vittasaathi/internal/infra/logger"
	"vittasaathi/internal/infra/metrics"
	"vittasaathi/internal/infra/provider"
)

type InfobipHandlers struct {
	Logger        *logger.Logger
	DialogService Iservices.IDialogService
	Provider      provider.IWhatsAppProvider
	Metrics       *metrics.Metrics
}

func NewInfobipHandlers(logger *logger.Logger, dialogService Iservices.IDialogService, whatsAppProvider provider.IWhatsAppProvider, m *metrics.Metrics) *InfobipHandlers {
	return &InfobipHandlers{
		Logger:        logger,
		DialogService: dialogService,
		Provider:      whatsAppProvider,
		Metrics:       m,
	}
}

func (th *InfobipHandlers) InfoBipWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var webhookRequest dto.InboundResponse
	if err := json.NewDecoder(r.Body).Decode(&webhookRequest); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if webhookRequest.MessageCount < 1 || len(webhookRequest.Results) < webhookRequest.MessageCount {
		http.Error(w, "Empty webhook payload", http.StatusBadRequest)
		return
	}

	result := webhookRequest.Results[webhookRequest.MessageCount-1]
	from := result.From
	text := result.Message.Text
	if result.Message.Type != "TEXT" || text == "" {
		w.WriteHeader(http.StatusOK)
		return
	}

	th.Metrics.InboundMessages.WithLabelValues("infobip").Inc()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				th.Logger.Error(fmt.Sprintf("Recovered from panic: %v", r))
			}
		}()

		replyText, err := th.DialogService.HandleInbound(from, text)
		if err != nil {
			th.Logger.Error(fmt.Sprintf("Failed to handle message from %s: %s", from, err.Error()))
			return
		}
		if replyText == "" {
			return
		}

		if err := th.Provider.SendTextMessage(from, replyText); err != nil {
			th.Logger.Error(fmt.Sprintf("Failed to send WhatsApp message to %s: %s", from, err.Error()))
		}
	}()

	w.WriteHeader(http.StatusOK)
}
