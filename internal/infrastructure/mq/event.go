package mq

import (
	"time"

	"github.com/google/uuid"

	"user-service/internal/domain/user"
)

const (
	ActionUserCreated = "user.created"
	ActionUserUpdated = "user.updated"
	ActionUserDeleted = "user.deleted"
)

// Actions doubles as the list of routing keys the queue is bound to.
var Actions = []string{
	ActionUserCreated,
	ActionUserUpdated,
	ActionUserDeleted,
}

type (
	Event struct {
		ID      uuid.UUID   `json:"event_id"`
		TS      time.Time   `json:"time_stamp"`
		Action  string      `json:"event_action"`
		UserID  string      `json:"user_id"`
		Payload UserPayload `json:"user_payload"`
	}
	UserPayload struct {
		ID        uuid.UUID  `json:"id"`
		Name      string     `json:"name"`
		Email     string     `json:"email"`
		Phone     string     `json:"phone"`
		BirthDate string     `json:"birth_date"`
		Role      int        `json:"role"`
		CreatedBy uuid.UUID  `json:"created_by"`
		CreatedAt time.Time  `json:"created_at"`
		UpdatedBy *uuid.UUID `json:"updated_by,omitempty"`
		UpdatedAt *time.Time `json:"updated_at,omitempty"`
		Deleted   bool       `json:"deleted"`
	}
)

// NewUserEvent snapshots u for the given action. The password never leaves the service.
func NewUserEvent(action string, u user.User, ts time.Time) Event {
	return Event{
		ID:     uuid.New(),
		TS:     ts,
		Action: action,
		UserID: u.ID.String(),
		Payload: UserPayload{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Phone:     u.Phone,
			BirthDate: u.BirthDate.Format(time.DateOnly),
			Role:      u.Role.Code(),
			CreatedBy: u.CreatedBy,
			CreatedAt: u.CreatedAt,
			UpdatedBy: u.UpdatedBy,
			UpdatedAt: u.UpdatedAt,
			Deleted:   u.Deleted,
		},
	}
}
