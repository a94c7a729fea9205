package contact

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// SubmitRequest is the public intake payload.
type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r SubmitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Message, validation.Required, validation.Length(1, 10000)),
	)
}

// SubmitResponse acknowledges a stored message without echoing its
// body back.
type SubmitResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// Response is the admin-facing wire shape.
type Response struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IPAddress string    `json:"ip_address,omitempty"`
	IsRead    bool      `json:"is_read"`
	IsReplied bool      `json:"is_replied"`
	CreatedAt time.Time `json:"created_at"`
}

// ToModel maps the request onto a fresh message, applying the subject
// default.
func (r *SubmitRequest) ToModel() *Message {
	subject := strings.TrimSpace(r.Subject)
	if subject == "" {
		subject = DefaultSubject
	}
	return &Message{
		Name:    r.Name,
		Email:   r.Email,
		Subject: subject,
		Message: r.Message,
	}
}

func ToResponse(m *Message) *Response {
	return &Response{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		IPAddress: m.IPAddress,
		IsRead:    m.IsRead,
		IsReplied: m.IsReplied,
		CreatedAt: m.CreatedAt,
	}
}
