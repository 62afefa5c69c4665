package domain

type HotelInfo struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type Testimonial struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Image   string `json:"image"`
}

type HomePage struct {
	Hotel         HotelInfo     `json:"hotel"`
	FeaturedRooms []Room        `json:"featuredRooms"`
	Testimonials  []Testimonial `json:"testimonials"`
}
