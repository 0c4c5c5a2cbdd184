package handlers

import (
	"terravista/services/admin"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single argument.
type HandlerBundle struct {
	AuthSvc admin.AuthService

	Booking      *BookingHandler
	Catalog      *CatalogHandler
	Content      *ContentHandler
	Notify       *NotifyHandler
	AdminAuth    *AdminAuthHandler
	Reservations *ReservationHandler
	Properties   *AdminPropertyHandler
	AdminContent *AdminContentHandler
	Availability *AdminAvailabilityHandler
	Storage      *StorageHandler
}
