package app

import "luxe_haven/internal/domain"

var DefaultHotel = domain.HotelInfo{
	Name:    "Luxe Haven Hotel",
	Tagline: "Experience unparalleled luxury and comfort in the heart of the city. Your perfect getaway awaits.",
	Address: "123 Luxury Lane, Cityville",
	Phone:   "+1 (555) 123-4567",
	Email:   "info@luxehaven.com",
}

var DefaultTestimonials = []domain.Testimonial{
	{
		ID:      1,
		Name:    "Sarah Johnson",
		Role:    "Business Traveler",
		Content: "The perfect blend of luxury and comfort. I stay here every time I'm in town for business.",
		Rating:  5,
		Image:   "/images/testimonial-1.jpg",
	},
	{
		ID:      2,
		Name:    "Michael Chen",
		Role:    "Family Vacation",
		Content: "Our family had an amazing time. The staff was incredibly accommodating to our children.",
		Rating:  5,
		Image:   "/images/testimonial-2.jpg",
	},
	{
		ID:      3,
		Name:    "Emma Rodriguez",
		Role:    "Weekend Getaway",
		Content: "The spa services were exceptional. I left feeling completely refreshed and rejuvenated.",
		Rating:  4,
		Image:   "/images/testimonial-3.jpg",
	},
}

// DefaultRooms is the catalog written to storage the first time rooms are read.
func DefaultRooms() []domain.Room {
	return []domain.Room{
		{ID: 1, Name: "Standard Single", Type: domain.RoomStandard, Price: 89, Image: "/images/standard-single.jpg",
			Description: "A cozy room with a plush single bed, work desk and city views.",
			Capacity:    1, Amenities: []string{"wifi", "tv", "aircon"}, Available: true},
		{ID: 2, Name: "Standard Double", Type: domain.RoomStandard, Price: 119, Image: "/images/standard-double.jpg",
			Description: "Comfortable double room with a queen bed and a rain shower.",
			Capacity:    2, Amenities: []string{"wifi", "tv", "aircon", "shower"}, Available: true},
		{ID: 3, Name: "Standard Twin", Type: domain.RoomStandard, Price: 99, Image: "/images/standard-twin.jpg",
			Description: "Two single beds, ideal for friends or colleagues travelling together.",
			Capacity:    2, Amenities: []string{"wifi", "tv"}, Available: false},
		{ID: 4, Name: "Deluxe King", Type: domain.RoomDeluxe, Price: 189, Image: "/images/deluxe-king.jpg",
			Description: "Spacious room with a king bed, minibar and a private balcony.",
			Capacity:    2, Amenities: []string{"wifi", "tv", "minibar", "balcony", "aircon"}, Available: true, Featured: true},
		{ID: 5, Name: "Deluxe Twin", Type: domain.RoomDeluxe, Price: 175, Image: "/images/deluxe-twin.jpg",
			Description: "Two double beds, breakfast included and a generous seating area.",
			Capacity:    4, Amenities: []string{"wifi", "tv", "breakfast", "minibar"}, Available: true},
		{ID: 6, Name: "Deluxe Ocean View", Type: domain.RoomDeluxe, Price: 229, Image: "/images/deluxe-ocean.jpg",
			Description: "Floor-to-ceiling windows over the bay and a deep soaking tub.",
			Capacity:    2, Amenities: []string{"wifi", "tv", "balcony", "minibar", "shower"}, Available: true},
		{ID: 7, Name: "Junior Suite", Type: domain.RoomSuite, Price: 279, Image: "/images/junior-suite.jpg",
			Description: "Separate living area, king bed and complimentary breakfast.",
			Capacity:    3, Amenities: []string{"wifi", "tv", "breakfast", "minibar", "aircon"}, Available: true, Featured: true},
		{ID: 8, Name: "Family Suite", Type: domain.RoomSuite, Price: 319, Image: "/images/family-suite.jpg",
			Description: "Two bedrooms and a lounge, made for families.",
			Capacity:    5, Amenities: []string{"wifi", "tv", "breakfast", "aircon"}, Available: true},
		{ID: 9, Name: "Honeymoon Suite", Type: domain.RoomSuite, Price: 389, Image: "/images/honeymoon-suite.jpg",
			Description: "Romantic suite with a jacuzzi, balcony and champagne on arrival.",
			Capacity:    2, Amenities: []string{"wifi", "jacuzzi", "balcony", "minibar", "breakfast"}, Available: true},
		{ID: 10, Name: "Executive Room", Type: domain.RoomExecutive, Price: 249, Image: "/images/executive-room.jpg",
			Description: "Club floor access, ergonomic workspace and evening canapés.",
			Capacity:    2, Amenities: []string{"wifi", "tv", "breakfast", "minibar", "aircon"}, Available: true},
		{ID: 11, Name: "Executive Suite", Type: domain.RoomExecutive, Price: 349, Image: "/images/executive-suite.jpg",
			Description: "Corner suite with a meeting table, jacuzzi and skyline views.",
			Capacity:    3, Amenities: []string{"wifi", "tv", "jacuzzi", "minibar", "balcony", "aircon"}, Available: true, Featured: true},
		{ID: 12, Name: "Presidential Suite", Type: domain.RoomExecutive, Price: 599, Image: "/images/presidential-suite.jpg",
			Description: "The top floor: private terrace, butler service and a grand piano.",
			Capacity:    4, Amenities: []string{"wifi", "tv", "jacuzzi", "minibar", "balcony", "breakfast", "shower"}, Available: false},
	}
}
