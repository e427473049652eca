package Iservices

import "vittasaathi/internal/domain/dto"

type IQueryAIService interface {
	ExecuteQueryAI(queryText string, locale string, messageContext string) (dto.QueryAIResponse, error)
}
