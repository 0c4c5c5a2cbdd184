package models

import "time"

// Property listing type.
const (
	PropertyForSale = "sale"
	PropertyForRent = "rent"
)

// Property lifecycle status. Inactive listings are hidden from the public catalog.
const (
	PropertyStatusActive   = "active"
	PropertyStatusSold     = "sold"
	PropertyStatusRented   = "rented"
	PropertyStatusInactive = "inactive"
)

// Room describes a single named room and its floor area in square meters.
type Room struct {
	Name string  `bson:"name" json:"name"`
	Area float64 `bson:"area" json:"area"`
}

// Property represents a single real-estate listing. Prices are USD.
// Images and FloorPlans hold storage keys; Images[0] is the cover image.
type Property struct {
	ID            string    `bson:"id" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description" json:"description"`
	Price         float64   `bson:"price" json:"price"`
	Type          string    `bson:"type" json:"type"`
	Status        string    `bson:"status" json:"status"`
	Featured      bool      `bson:"featured" json:"featured"`
	Location      string    `bson:"location" json:"location"`
	Latitude      *float64  `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude     *float64  `bson:"longitude,omitempty" json:"longitude,omitempty"`
	PropertyType  string    `bson:"property_type" json:"propertyType"`
	Bedrooms      int       `bson:"bedrooms" json:"bedrooms"`
	Bathrooms     int       `bson:"bathrooms" json:"bathrooms"`
	Area          float64   `bson:"area" json:"area"`
	YearBuilt     int       `bson:"year_built,omitempty" json:"yearBuilt,omitempty"`
	FloorNumber   int       `bson:"floor_number,omitempty" json:"floorNumber,omitempty"`
	TotalFloors   int       `bson:"total_floors,omitempty" json:"totalFloors,omitempty"`
	ParkingSpaces int       `bson:"parking_spaces,omitempty" json:"parkingSpaces,omitempty"`
	Furnished     *bool     `bson:"furnished,omitempty" json:"furnished,omitempty"`
	HeatingType   string    `bson:"heating_type,omitempty" json:"heatingType,omitempty"`
	CoolingType   string    `bson:"cooling_type,omitempty" json:"coolingType,omitempty"`
	Images        []string  `bson:"images" json:"images"`
	FloorPlans    []string  `bson:"floor_plans,omitempty" json:"floorPlans,omitempty"`
	Rooms         []Room    `bson:"rooms,omitempty" json:"rooms,omitempty"`
	Amenities     []string  `bson:"amenities,omitempty" json:"amenities,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// SetCoverImage moves the given storage key to the front of the image list,
// preserving the relative order of the remaining images. It reports whether
// the key was present.
func (p *Property) SetCoverImage(key string) bool {
	for i, img := range p.Images {
		if img != key {
			continue
		}
		if i == 0 {
			return true
		}
		reordered := make([]string, 0, len(p.Images))
		reordered = append(reordered, key)
		reordered = append(reordered, p.Images[:i]...)
		reordered = append(reordered, p.Images[i+1:]...)
		p.Images = reordered
		return true
	}
	return false
}

// CoverImage returns the storage key of the cover image, or "" when the
// listing has no images.
func (p *Property) CoverImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
