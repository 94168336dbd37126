package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StatusNew marks a message that no one has triaged yet. It is the only
// status this service ever writes.
const StatusNew = "new"

// ContactMessage is a single contact form submission.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

// NewContactMessage builds a message with a fresh id, the current UTC
// instant and status "new". Phone and address may be empty.
func NewContactMessage(name, email, phone, address, comment string) *ContactMessage {
	return &ContactMessage{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Address:   address,
		Comment:   comment,
		Timestamp: time.Now().UTC(),
		Status:    StatusNew,
	}
}

type contactMessageDoc struct {
	ID        string `bson:"id"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	Phone     string `bson:"phone"`
	Address   string `bson:"address"`
	Comment   string `bson:"comment"`
	Timestamp string `bson:"timestamp"`
	Status    string `bson:"status"`
}

func (m *ContactMessage) doc() *contactMessageDoc {
	return &contactMessageDoc{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
		Comment:   m.Comment,
		Timestamp: m.Timestamp.Format(time.RFC3339Nano),
		Status:    m.Status,
	}
}

// CreateContactMessage persists the message.
func (s *Store) CreateContactMessage(ctx context.Context, msg *ContactMessage) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := s.contactMessages().InsertOne(ctx, msg.doc()); err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}
