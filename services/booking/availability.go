package booking

import (
	"context"
	"fmt"
	"time"

	"terravista/models"
)

const dateLayout = "2006-01-02"

// ResolveSlots returns the full annotated slot list for a date: every
// configured time in its configured order, flagged booked when a
// non-cancelled reservation holds it. An absent availability record or an
// empty times list yields an empty result.
func (r *AvailabilityResolver) ResolveSlots(ctx context.Context, date string) ([]models.SlotView, error) {
	avail, err := r.Availability.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	if avail == nil || len(avail.Times) == 0 {
		return nil, nil
	}

	reservations, err := r.Reservations.GetActiveByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}

	booked := make(map[string]bool, len(reservations))
	for i := range reservations {
		booked[reservations[i].SlotTime()] = true
	}

	slots := make([]models.SlotView, 0, len(avail.Times))
	for _, t := range avail.Times {
		nt := normalizeTime(t)
		slots = append(slots, models.SlotView{Time: nt, Booked: booked[nt]})
	}
	return slots, nil
}

// OpenTimes returns only the still-bookable times for a date, preserving
// configured order.
func (r *AvailabilityResolver) OpenTimes(ctx context.Context, date string) ([]string, error) {
	slots, err := r.ResolveSlots(ctx, date)
	if err != nil {
		return nil, err
	}
	return models.OpenTimes(slots), nil
}

// BookableDates lists dates from today through the horizon that have at
// least one open slot. Dates whose configured times are all taken, and
// records with an empty times list, are excluded.
func (r *AvailabilityResolver) BookableDates(ctx context.Context, now time.Time, horizonDays int) ([]string, error) {
	from := now.Format(dateLayout)
	// The window is inclusive on both ends, so it spans horizonDays+1 dates.
	records, err := r.Availability.ListFrom(ctx, from, int64(horizonDays)+1)
	if err != nil {
		return nil, fmt.Errorf("failed to list availabilities: %w", err)
	}

	horizon := now.AddDate(0, 0, horizonDays).Format(dateLayout)
	var dates []string
	for i := range records {
		if records[i].Date > horizon {
			break
		}
		open, err := r.OpenTimes(ctx, records[i].Date)
		if err != nil {
			return nil, err
		}
		if len(open) > 0 {
			dates = append(dates, records[i].Date)
		}
	}
	return dates, nil
}

// normalizeTime drops a trailing seconds component, so "09:00:00" and
// "09:00" compare equal.
func normalizeTime(t string) string {
	if len(t) >= 5 {
		return t[:5]
	}
	return t
}

// validBookingDate reports whether date parses and is today or later.
func validBookingDate(date string, now time.Time) bool {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	today, _ := time.Parse(dateLayout, now.Format(dateLayout))
	return !d.Before(today)
}
