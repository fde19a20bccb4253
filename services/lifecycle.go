package services

import (
	"log"

	"github.com/google/uuid"

	"tattooapp-backend/models"
)

type Action string

const (
	ActionCancel   Action = "cancel"
	ActionConfirm  Action = "confirm"
	ActionComplete Action = "complete"
	ActionAddNote  Action = "add_note"
)

type transition struct {
	from      []models.AppointmentStatus // nil means any state
	to        models.AppointmentStatus   // empty means status unchanged
	adminOnly bool
}

var transitions = map[Action]transition{
	ActionCancel: {
		from: []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed},
		to:   models.StatusCancelled,
	},
	ActionConfirm: {
		from:      []models.AppointmentStatus{models.StatusPending},
		to:        models.StatusConfirmed,
		adminOnly: true,
	},
	ActionComplete: {
		from:      []models.AppointmentStatus{models.StatusConfirmed},
		to:        models.StatusCompleted,
		adminOnly: true,
	},
	ActionAddNote: {
		adminOnly: true,
	},
}

// LifecycleManager applies role-authorized state transitions to appointments.
// Transitions are validated against the current state: confirming an already
// confirmed or cancelled appointment is rejected, not silently accepted.
type LifecycleManager struct {
	appointments AppointmentStore
}

func NewLifecycleManager(appointments AppointmentStore) *LifecycleManager {
	return &LifecycleManager{appointments: appointments}
}

// Apply runs one action against an appointment on behalf of an actor.
func (m *LifecycleManager) Apply(appointmentID uuid.UUID, action Action, actorID uuid.UUID, actorRole, notes string) (*models.Appointment, error) {
	appt, err := m.appointments.FindByID(appointmentID)
	if err != nil {
		log.Printf("Failed to look up appointment %s: %v", appointmentID, err)
		return nil, ErrInternal
	}
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}

	isAdmin := actorRole == models.RoleAdmin
	isOwner := appt.UserID == actorID
	if !isOwner && !isAdmin {
		return nil, ErrForbidden
	}

	tr, ok := transitions[action]
	if !ok {
		return nil, ErrInvalidAction
	}
	if tr.adminOnly && !isAdmin {
		return nil, ErrForbidden
	}
	if !tr.allowsFrom(appt.Status) {
		return nil, ErrInvalidAction
	}

	if tr.to != "" {
		appt.Status = tr.to
	}
	if action == ActionAddNote {
		appt.Notes = notes
	}

	if err := m.appointments.Save(appt); err != nil {
		log.Printf("Failed to update appointment %s: %v", appointmentID, err)
		return nil, ErrInternal
	}

	return appt, nil
}

func (t transition) allowsFrom(status models.AppointmentStatus) bool {
	if t.from == nil {
		return true
	}
	for _, s := range t.from {
		if s == status {
			return true
		}
	}
	return false
}
