package models

import "time"

// Reservation status values. Pending reservations are created by the public
// booking flow; confirmed and cancelled are set only by the admin back office.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Reservation is a single consultation booking request. Date is stored as
// "2006-01-02" and Time with seconds as "15:04:05"; availability comparisons
// normalize to hour:minute.
type Reservation struct {
	ID                string    `bson:"id" json:"id"`
	Name              string    `bson:"name" json:"name"`
	Email             string    `bson:"email" json:"email"`
	Phone             string    `bson:"phone" json:"phone"`
	Message           string    `bson:"message,omitempty" json:"message,omitempty"`
	Date              string    `bson:"date" json:"date"`
	Time              string    `bson:"time" json:"time"`
	Status            string    `bson:"status" json:"status"`
	Budget            string    `bson:"budget,omitempty" json:"budget,omitempty"`
	PropertyType      string    `bson:"property_type,omitempty" json:"propertyType,omitempty"`
	InvestmentType    string    `bson:"investment_type,omitempty" json:"investmentType,omitempty"`
	Reason            string    `bson:"reason,omitempty" json:"reason,omitempty"`
	ReferralSource    string    `bson:"referral_source,omitempty" json:"referralSource,omitempty"`
	DesiredProperties []string  `bson:"desired_properties,omitempty" json:"desiredProperties,omitempty"`
	MeetLink          string    `bson:"meet_link,omitempty" json:"meetLink,omitempty"`
	CancelReason      string    `bson:"cancel_reason,omitempty" json:"cancelReason,omitempty"`
	CreatedAt         time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updatedAt"`
}

// SlotTime returns the reservation time normalized to "15:04".
func (r *Reservation) SlotTime() string {
	if len(r.Time) >= 5 {
		return r.Time[:5]
	}
	return r.Time
}
