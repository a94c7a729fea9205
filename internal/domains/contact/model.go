package contact

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSubject is used when the sender leaves the subject blank.
const DefaultSubject = "Portfolio Contact"

type Message struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Subject   string
	Message   string
	IPAddress string
	IsRead    bool
	IsReplied bool
	CreatedAt time.Time
}
