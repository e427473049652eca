package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"vittasaathi/internal/domain/entities"
	"vittasaathi/internal/domain/interfaces/repository"
	Iservices "vittasaathi/internal/domain/interfaces/services"
	"vittasaathi/internal/infra/logger"
	"vittasaathi/internal/infra/metrics"
	"vittasaathi/internal/infra/nlp"
	"vittasaathi/internal/infra/onboarding"
	"vittasaathi/internal/infra/store"
)

type handlerFunc func(uc *entities.UserContext, locale entities.Locale, ents entities.Entities, text string) string

// DialogService routes one inbound message through onboarding or the intent
// cascade and produces the reply. Turns for the same conversation are
// serialized with a per-conversation lock so session state never interleaves.
type DialogService struct {
	Logger             *logger.Logger
	UserContextService Iservices.IUserContextService
	Ledger             store.Store
	Classifier         *nlp.Classifier
	Onboarding         *onboarding.Machine
	Metrics            *metrics.Metrics
	Ctx                context.Context

	now      func() time.Time
	handlers map[entities.Intent]handlerFunc

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewDialogService(ctx context.Context, log *logger.Logger, userContextService Iservices.IUserContextService, ledger store.Store, classifier *nlp.Classifier, machine *onboarding.Machine, m *metrics.Metrics) *DialogService {
	ds := &DialogService{
		Logger:             log,
		UserContextService: userContextService,
		Ledger:             ledger,
		Classifier:         classifier,
		Onboarding:         machine,
		Metrics:            m,
		Ctx:                ctx,
		now:                time.Now,
		locks:              map[string]*sync.Mutex{},
	}

	ds.handlers = map[entities.Intent]handlerFunc{
		entities.IntentGreeting:         ds.handleGreeting,
		entities.IntentHelp:             ds.handleHelp,
		entities.IntentOtpRequest:       ds.handleOtpRequest,
		entities.IntentLogExpense:       ds.handleLogExpense,
		entities.IntentLogIncome:        ds.handleLogIncome,
		entities.IntentCheckBalance:     ds.handleCheckBalance,
		entities.IntentViewReport:       ds.handleViewReport,
		entities.IntentBudgetQuery:      ds.handleBudgetQuery,
		entities.IntentInvestmentAdvice: ds.handleInvestment,
		entities.IntentMarketUpdate:     ds.handleMarket,
		entities.IntentConfirmation:     ds.handleConfirmation,
		entities.IntentFallback:         ds.handleFallback,
		entities.IntentUnknown:          ds.handleUnknown,
	}

	return ds
}

func (ds *DialogService) lockFor(conversationID string) *sync.Mutex {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	lock, ok := ds.locks[conversationID]
	if !ok {
		lock = &sync.Mutex{}
		ds.locks[conversationID] = lock
	}
	return lock
}

// HandleInbound processes one message and returns the reply text. A brand
// new conversation starts onboarding; an incomplete onboarding consumes the
// message as its next answer; everything else goes through the classifier.
func (ds *DialogService) HandleInbound(conversationID string, text string) (string, error) {
	lock := ds.lockFor(conversationID)
	lock.Lock()
	defer lock.Unlock()

	uc, err := ds.UserContextService.FindContext(conversationID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		ds.Logger.Error(fmt.Sprintf("Failed to load context for %s: %v", conversationID, err))
		return "", fmt.Errorf("find user context: %w", err)
	}
	if err != nil {
		state, replyText := ds.Onboarding.Begin()
		uc = entities.UserContext{
			ConversationID: conversationID,
			Onboarding:     state,
		}
		uc.Session.LastResponse = replyText
		uc.UpdatedAt = ds.now()
		if err := ds.UserContextService.Create(uc); err != nil {
			return "", fmt.Errorf("create user context: %w", err)
		}
		return replyText, nil
	}

	var replyText string
	if !uc.Onboarding.Completed {
		replyText = ds.advanceOnboarding(&uc, text)
	} else {
		replyText = ds.route(&uc, text)
	}

	uc.Session.LastResponse = replyText
	uc.UpdatedAt = ds.now()
	if _, err := ds.UserContextService.UpdateUserContext(conversationID, uc); err != nil {
		ds.Logger.Error(fmt.Sprintf("Failed to persist context for %s: %v", conversationID, err))
	}
	return replyText, nil
}

func (ds *DialogService) advanceOnboarding(uc *entities.UserContext, text string) string {
	state, replyText := ds.Onboarding.Advance(uc.Onboarding, text)
	uc.Onboarding = state
	if state.Completed {
		uc.Session.Locale = state.Profile.Locale
		ds.Metrics.OnboardingCompleted.Inc()
	}
	return replyText
}

// route handles a fully onboarded conversation: language commands first,
// then locale resolution, classification and the per-intent handler.
func (ds *DialogService) route(uc *entities.UserContext, text string) string {
	session := &uc.Session

	// Restart wipes the profile and rebuilds it, same as during onboarding.
	if onboarding.IsRestartCommand(text) {
		state, replyText := ds.Onboarding.Begin()
		uc.Onboarding = state
		session.AwaitingConfirmation = false
		session.AwaitingLocale = false
		return replyText
	}

	if session.AwaitingLocale {
		session.AwaitingLocale = false
		if chosen, ok := onboarding.ParseLocaleChoice(text); ok {
			session.Locale = chosen
			uc.Onboarding.Profile.Locale = chosen
			return reply(replyLocaleUpdated, chosen)
		}
		// An unrecognized choice never mutates the locale.
		return reply(replyLocaleKept, session.Locale)
	}

	if nlp.IsLanguageCommand(text) {
		session.AwaitingLocale = true
		return reply(replyLocaleMenu, session.Locale)
	}

	locale := nlp.DetectLocale(text, session.Locale)
	session.Locale = locale

	intent, ents := ds.Classifier.Classify(text, locale, *session)
	ds.Metrics.ClassifiedIntents.WithLabelValues(string(intent), string(locale)).Inc()

	// A pending question lives exactly one turn. Handlers that ask a new
	// question set the flag again.
	session.AwaitingConfirmation = false

	handler, ok := ds.handlers[intent]
	if !ok {
		handler = ds.handleUnknown
	}
	replyText := handler(uc, locale, ents, text)

	session.LastIntent = intent
	session.LastEntities = ents
	return replyText
}
