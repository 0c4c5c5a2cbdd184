package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotsFor(times ...string) []SlotView {
	slots := make([]SlotView, len(times))
	for i, t := range times {
		slots[i] = SlotView{Time: t}
	}
	return slots
}

func TestNewBookingSessionStartsAtDateSelection(t *testing.T) {
	s := NewBookingSession("abc")
	assert.Equal(t, "abc", s.SessionID)
	assert.Equal(t, StageSelectingDate, s.Stage)
	assert.Empty(t, s.Date)
	assert.Empty(t, s.Time)
}

func TestSelectDateAdvancesToTimeSelection(t *testing.T) {
	s := NewBookingSession("abc")
	require.NoError(t, s.SelectDate("2026-09-10", slotsFor("09:00", "10:00")))
	assert.Equal(t, StageSelectingTime, s.Stage)
	assert.Equal(t, "2026-09-10", s.Date)
	assert.Len(t, s.Slots, 2)
}

func TestSelectTime(t *testing.T) {
	tests := []struct {
		name    string
		slots   []SlotView
		choose  string
		wantErr error
	}{
		{
			name:   "open slot is accepted",
			slots:  slotsFor("09:00", "10:00"),
			choose: "10:00",
		},
		{
			name:    "booked slot is rejected",
			slots:   []SlotView{{Time: "09:00"}, {Time: "10:00", Booked: true}},
			choose:  "10:00",
			wantErr: ErrSlotBooked,
		},
		{
			name:    "unknown time is rejected",
			slots:   slotsFor("09:00", "10:00"),
			choose:  "11:30",
			wantErr: ErrSlotNotOffered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewBookingSession("abc")
			require.NoError(t, s.SelectDate("2026-09-10", tt.slots))

			err := s.SelectTime(tt.choose)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, StageSelectingTime, s.Stage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.choose, s.Time)
			assert.Equal(t, StageEnteringDetails, s.Stage)
		})
	}
}

func TestSelectTimeBeforeDateIsWrongStage(t *testing.T) {
	s := NewBookingSession("abc")
	assert.ErrorIs(t, s.SelectTime("09:00"), ErrWrongStage)
}

func TestBackKeepsEnteredData(t *testing.T) {
	s := NewBookingSession("abc")
	require.NoError(t, s.SelectDate("2026-09-10", slotsFor("09:00", "10:00")))
	require.NoError(t, s.SelectTime("09:00"))
	require.NoError(t, s.EnterDetails(BookingDetails{Name: "Ana", Email: "ana@example.com", Phone: "123"}))

	s.Back()
	assert.Equal(t, StageSelectingTime, s.Stage)
	s.Back()
	assert.Equal(t, StageSelectingDate, s.Stage)
	s.Back()
	assert.Equal(t, StageSelectingDate, s.Stage)

	// Everything entered so far survives the backward navigation.
	assert.Equal(t, "2026-09-10", s.Date)
	assert.Equal(t, "09:00", s.Time)
	assert.Equal(t, "Ana", s.Details.Name)
}

func TestReselectingDateKeepsTimeOnlyIfStillOpen(t *testing.T) {
	s := NewBookingSession("abc")
	require.NoError(t, s.SelectDate("2026-09-10", slotsFor("09:00", "10:00")))
	require.NoError(t, s.SelectTime("10:00"))

	// New date still offers 10:00 unbooked, so the choice is retained.
	require.NoError(t, s.SelectDate("2026-09-11", slotsFor("10:00", "11:00")))
	assert.Equal(t, "10:00", s.Time)

	// New date has 10:00 booked, so the choice is dropped.
	require.NoError(t, s.SelectDate("2026-09-12", []SlotView{{Time: "10:00", Booked: true}}))
	assert.Empty(t, s.Time)
}

func TestValidateForSubmit(t *testing.T) {
	ready := func() *BookingSession {
		s := NewBookingSession("abc")
		_ = s.SelectDate("2026-09-10", slotsFor("09:00"))
		_ = s.SelectTime("09:00")
		_ = s.EnterDetails(BookingDetails{Name: "Ana", Email: "ana@example.com", Phone: "123"})
		return s
	}

	t.Run("complete session passes", func(t *testing.T) {
		assert.NoError(t, ready().ValidateForSubmit())
	})

	t.Run("missing contact fields fail", func(t *testing.T) {
		s := ready()
		s.Details.Phone = ""
		assert.Error(t, s.ValidateForSubmit())
	})

	t.Run("wrong stage fails", func(t *testing.T) {
		s := ready()
		s.Back()
		assert.ErrorIs(t, s.ValidateForSubmit(), ErrWrongStage)
	})
}
