package dto

// Payload do webhook do WhatsApp Cloud (apenas os campos consumidos).
type WebhookPayload struct {
	Entry []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	Changes []WebhookChange `json:"changes"`
}

type WebhookChange struct {
	Value WebhookValue `json:"value"`
}

type WebhookValue struct {
	Metadata WebhookMetadata  `json:"metadata"`
	Messages []InboundMessage `json:"messages"`
}

type WebhookMetadata struct {
	PhoneNumberID string `json:"phone_number_id"`
}

type InboundMessage struct {
	From string       `json:"from"`
	Type string       `json:"type"`
	Text *InboundText `json:"text"`
}

type InboundText struct {
	Body string `json:"body"`
}

// Corpo da mensagem de saída para a Graph API.
type OutboundMessage struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             OutboundText `json:"text"`
}

type OutboundText struct {
	Body string `json:"body"`
}
