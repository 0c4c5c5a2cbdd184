package models

// BookingEmailPayload is queued when a reservation is created; the worker
// relays it to the office inbox.
type BookingEmailPayload struct {
	ReservationID     string   `json:"reservationId"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	Message           string   `json:"message,omitempty"`
	Date              string   `json:"date"`
	Time              string   `json:"time"`
	Budget            string   `json:"budget,omitempty"`
	PropertyType      string   `json:"propertyType,omitempty"`
	InvestmentType    string   `json:"investmentType,omitempty"`
	Reason            string   `json:"reason,omitempty"`
	ReferralSource    string   `json:"referralSource,omitempty"`
	DesiredProperties []string `json:"desiredProperties,omitempty"`
}

// ConfirmationEmailPayload is queued when an admin confirms a reservation.
// MeetLink is an externally created meeting URL and may be empty.
type ConfirmationEmailPayload struct {
	ReservationID string `json:"reservationId"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	MeetLink      string `json:"meetLink,omitempty"`
}

// RejectionEmailPayload is queued when an admin rejects a reservation.
type RejectionEmailPayload struct {
	ReservationID string `json:"reservationId"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Reason        string `json:"reason"`
}

// ContactMessage is the payload of the public contact form, relayed to the
// office inbox without being persisted.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}
