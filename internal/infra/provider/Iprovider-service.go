package provider

type IWhatsAppProvider interface {
	SendTextMessage(to, message string) error
}
