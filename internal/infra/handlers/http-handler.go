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

type HttpHandlers struct {
	Logger        *logger.Logger
	VerifyToken   string
	DialogService Iservices.IDialogService
	Provider      provider.IWhatsAppProvider
	Metrics       *metrics.Metrics
}

func NewHttpHandlers(logger *logger.Logger, verifyToken string, dialogService Iservices.IDialogService, whatsAppProvider provider.IWhatsAppProvider, m *metrics.Metrics) *HttpHandlers {
	return &HttpHandlers{
		Logger:        logger,
		VerifyToken:   verifyToken,
		DialogService: dialogService,
		Provider:      whatsAppProvider,
		Metrics:       m,
	}
}

// MetaWebhook is a unified handler for WhatsApp Cloud API webhook requests.
// GET requests are the endpoint verification handshake; POST requests carry
// message events.
func (th *HttpHandlers) MetaWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		th.handleVerification(w, r)
		return
	}

	if r.Method == http.MethodPost {
		th.handleWebhookEvent(w, r)
		return
	}

	http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
}

// handleVerification echoes hub.challenge back when the verify token
// matches, per the Meta webhook setup handshake.
func (th *HttpHandlers) handleVerification(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	mode := query.Get("hub.mode")
	token := query.Get("hub.verify_token")
	challenge := query.Get("hub.challenge")

	if mode == "subscribe" && token == th.VerifyToken {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(challenge))
		return
	}

	http.Error(w, "Forbidden", http.StatusForbidden)
}

// handleWebhookEvent acknowledges the event immediately and processes each
// text message on its own goroutine. The webhook must answer fast; Meta
// retries on slow responses.
func (th *HttpHandlers) handleWebhookEvent(w http.ResponseWriter, r *http.Request) {
	var body dto.IWebhookMessage

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		th.Logger.Error(fmt.Sprintf("Invalid JSON payload: %s", err.Error()))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	for _, entry := range body.Entry {
		for _, change := range entry.Changes {
			for _, message := range change.Value.Messages {
				if message.Type != "text" || message.Text.Body == "" {
					continue
				}
				th.Metrics.InboundMessages.WithLabelValues("meta").Inc()
				go th.processMessage(message.From, message.Text.Body)
			}
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (th *HttpHandlers) processMessage(from, text string) {
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
}
