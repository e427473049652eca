package Iservices

// IDialogService turns one inbound message into the reply to send back.
type IDialogService interface {
	HandleInbound(conversationID string, text string) (string, error)
}
