package Iservices

import "vittasaathi/internal/domain/entities"

// IUserContextService defines the methods the service must implement.
type IUserContextService interface {
	Create(input entities.UserContext) error
	FindContext(conversationID string) (entities.UserContext, error)
	UpdateUserContext(conversationID string, entity entities.UserContext) (entities.UserContext, error)
}
