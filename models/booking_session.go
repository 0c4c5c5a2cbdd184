package models

import (
	"errors"
	"time"
)

// Booking wizard stages. Moving back to an earlier stage never clears data
// entered in a later one, so a visitor can revise a choice without retyping.
const (
	StageSelectingDate   = "selecting_date"
	StageSelectingTime   = "selecting_time"
	StageEnteringDetails = "entering_details"
	StageSubmitted       = "submitted"
)

var (
	// ErrSlotNotOffered is returned when the chosen time is not among the
	// resolved slots for the selected date.
	ErrSlotNotOffered = errors.New("time is not offered on the selected date")
	// ErrSlotBooked is returned when the chosen time is offered but already taken.
	ErrSlotBooked = errors.New("time is already booked")
	// ErrWrongStage is returned when a transition is attempted out of order.
	ErrWrongStage = errors.New("invalid booking stage for this operation")
)

// BookingDetails holds the contact and preference fields collected in the
// final wizard step. Only Name, Email and Phone are required.
type BookingDetails struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	Message           string   `json:"message,omitempty"`
	Budget            string   `json:"budget,omitempty"`
	PropertyType      string   `json:"propertyType,omitempty"`
	InvestmentType    string   `json:"investmentType,omitempty"`
	Reason            string   `json:"reason,omitempty"`
	ReferralSource    string   `json:"referralSource,omitempty"`
	DesiredProperties []string `json:"desiredProperties,omitempty"`
}

// BookingSession is the state of one in-progress booking wizard. It is kept
// in Redis keyed by SessionID and carries everything entered so far.
type BookingSession struct {
	SessionID string         `json:"sessionId"`
	Stage     string         `json:"stage"`
	Date      string         `json:"date,omitempty"`
	Time      string         `json:"time,omitempty"`
	Slots     []SlotView     `json:"slots,omitempty"`
	Details   BookingDetails `json:"details"`
	CreatedAt time.Time      `json:"createdAt"`
}

// NewBookingSession returns a fresh session in the date-selection stage.
func NewBookingSession(sessionID string) *BookingSession {
	return &BookingSession{
		SessionID: sessionID,
		Stage:     StageSelectingDate,
		CreatedAt: time.Now().UTC(),
	}
}

// SelectDate records the chosen date together with its resolved slots and
// advances to time selection. Re-selecting a date from a later stage is
// allowed; a previously chosen time is kept only if the new date still
// offers it unbooked.
func (s *BookingSession) SelectDate(date string, slots []SlotView) error {
	if s.Stage == StageSubmitted {
		return ErrWrongStage
	}
	s.Date = date
	s.Slots = slots
	if s.Time != "" && !slotOpen(slots, s.Time) {
		s.Time = ""
	}
	s.Stage = StageSelectingTime
	return nil
}

// SelectTime records the chosen time and advances to the details stage. The
// time must be one of the offered slots and not already booked.
func (s *BookingSession) SelectTime(t string) error {
	if s.Stage != StageSelectingTime && s.Stage != StageEnteringDetails {
		return ErrWrongStage
	}
	for _, slot := range s.Slots {
		if slot.Time != t {
			continue
		}
		if slot.Booked {
			return ErrSlotBooked
		}
		s.Time = t
		s.Stage = StageEnteringDetails
		return nil
	}
	return ErrSlotNotOffered
}

// EnterDetails merges the contact/preference form into the session without
// changing stage, so partial input survives backward navigation.
func (s *BookingSession) EnterDetails(d BookingDetails) error {
	if s.Stage == StageSubmitted {
		return ErrWrongStage
	}
	s.Details = d
	return nil
}

// Back moves one stage backwards, keeping all accumulated data.
func (s *BookingSession) Back() {
	switch s.Stage {
	case StageEnteringDetails:
		s.Stage = StageSelectingTime
	case StageSelectingTime:
		s.Stage = StageSelectingDate
	}
}

// ValidateForSubmit checks the session is ready to produce a reservation.
func (s *BookingSession) ValidateForSubmit() error {
	if s.Stage != StageEnteringDetails {
		return ErrWrongStage
	}
	if s.Date == "" || s.Time == "" {
		return errors.New("date and time must be selected")
	}
	if s.Details.Name == "" || s.Details.Email == "" || s.Details.Phone == "" {
		return errors.New("name, email and phone are required")
	}
	return nil
}

func slotOpen(slots []SlotView, t string) bool {
	for _, s := range slots {
		if s.Time == t {
			return !s.Booked
		}
	}
	return false
}
