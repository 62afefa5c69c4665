package domain

import (
	"fmt"
	"strings"
)

type RoomType string

const (
	RoomStandard  RoomType = "standard"
	RoomDeluxe    RoomType = "deluxe"
	RoomSuite     RoomType = "suite"
	RoomExecutive RoomType = "executive"
)

var RoomTypes = []RoomType{RoomStandard, RoomDeluxe, RoomSuite, RoomExecutive}

func ParseRoomType(s string) (RoomType, error) {
	t := RoomType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range RoomTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown room type %q", s)
}

type Room struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Type        RoomType `json:"type"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
	Available   bool     `json:"available"`
	Featured    bool     `json:"featured,omitempty"`
}

type Amenity struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
}

var amenityLabels = map[string]string{
	"wifi":      "Free WiFi",
	"tv":        "Smart TV",
	"breakfast": "Breakfast Included",
	"minibar":   "Mini Bar",
	"balcony":   "Private Balcony",
	"jacuzzi":   "Jacuzzi",
	"aircon":    "Air Conditioning",
	"shower":    "Rain Shower",
}

// AmenityLabel returns the display label for an amenity tag; unknown tags are capitalized.
func AmenityLabel(tag string) string {
	if l, ok := amenityLabels[tag]; ok {
		return l
	}
	if tag == "" {
		return ""
	}
	return strings.ToUpper(tag[:1]) + tag[1:]
}

func (r Room) AmenityList() []Amenity {
	out := make([]Amenity, 0, len(r.Amenities))
	for _, a := range r.Amenities {
		out = append(out, Amenity{Tag: a, Label: AmenityLabel(a)})
	}
	return out
}
