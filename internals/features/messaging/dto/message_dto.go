package dto

import (
	m "classdesk_backend/internals/features/messaging/model"
)

/* =========================
   Requests
   ========================= */

type CreateMessageRequest struct {
	Sender    string `json:"sender" validate:"required,min=1,max=160"`
	Recipient string `json:"recipient" validate:"required,min=1,max=160"`
	Subject   string `json:"subject" validate:"required,min=1,max=200"`
	Body      string `json:"body" validate:"required,min=1"`
}

// UpdateMessageRequest: the inbox only flips the read flag.
type UpdateMessageRequest struct {
	Read *bool `json:"read,omitempty"`
}

func (r CreateMessageRequest) ToModel() m.MessageModel {
	return m.MessageModel{
		Sender:    r.Sender,
		Recipient: r.Recipient,
		Subject:   r.Subject,
		Body:      r.Body,
	}
}

func (r UpdateMessageRequest) Apply(msg *m.MessageModel) {
	if r.Read != nil {
		msg.Read = *r.Read
	}
}
