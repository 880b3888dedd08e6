package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/transport/http/response"
)

type DestinationHandler struct{}

type Destination struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Country      string   `json:"country"`
	Category     string   `json:"category"`
	Rating       float64  `json:"rating"`
	ReviewsCount int      `json:"reviews_count"`
	ImageURL     string   `json:"image_url"`
	Description  string   `json:"description"`
	Highlights   []string `json:"highlights"`
}

// DestinationDetail adds the travel-planning fields served by the show
// endpoint only.
type DestinationDetail struct {
	Destination
	BestTimeToVisit   string `json:"best_time_to_visit"`
	AverageCostPerDay int    `json:"average_cost_per_day"`
	Currency          string `json:"currency"`
}

func NewDestinationHandler() *DestinationHandler {
	return &DestinationHandler{}
}

// List serves the featured destination catalog. Static for now.
// TODO: move to the database once destinations become editable.
func (h *DestinationHandler) List(c *gin.Context) {
	response.OK(c, http.StatusOK, gin.H{
		"destinations": featuredDestinations,
	})
}

// Show returns the detail record for one destination; only part of the
// catalog has detail records so far.
func (h *DestinationHandler) Show(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, "Destination not found")
		return
	}

	detail, ok := destinationDetails[id]
	if !ok {
		response.Fail(c, http.StatusNotFound, "Destination not found")
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"destination": detail,
	})
}

var featuredDestinations = []Destination{
	{
		ID:           1,
		Name:         "Paris",
		Country:      "France",
		Category:     "City Break",
		Rating:       4.8,
		ReviewsCount: 3200,
		ImageURL:     "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=800",
		Description:  "The City of Light beckons with its iconic landmarks, world-class museums, and romantic atmosphere.",
		Highlights:   []string{"Eiffel Tower", "Louvre Museum", "Notre-Dame Cathedral", "Champs-Élysées"},
	},
	{
		ID:           2,
		Name:         "Tokyo",
		Country:      "Japan",
		Category:     "Urban",
		Rating:       4.9,
		ReviewsCount: 5100,
		ImageURL:     "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=800",
		Description:  "A mesmerizing blend of ancient tradition and cutting-edge technology in the heart of Japan.",
		Highlights:   []string{"Shibuya Crossing", "Senso-ji Temple", "Tokyo Skytree", "Meiji Shrine"},
	},
	{
		ID:           3,
		Name:         "Santorini",
		Country:      "Greece",
		Category:     "Beach",
		Rating:       4.7,
		ReviewsCount: 2800,
		ImageURL:     "https://images.unsplash.com/photo-1613395877344-13d4a8e0d49e?w=800",
		Description:  "Stunning white-washed buildings perched on volcanic cliffs overlooking the Aegean Sea.",
		Highlights:   []string{"Oia Sunset", "Red Beach", "Ancient Akrotiri", "Wine Tasting"},
	},
	{
		ID:           4,
		Name:         "New York",
		Country:      "USA",
		Category:     "Urban",
		Rating:       4.6,
		ReviewsCount: 4500,
		ImageURL:     "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?w=800",
		Description:  "The city that never sleeps offers endless entertainment, culture, and iconic landmarks.",
		Highlights:   []string{"Statue of Liberty", "Central Park", "Times Square", "Brooklyn Bridge"},
	},
	{
		ID:           5,
		Name:         "Bali",
		Country:      "Indonesia",
		Category:     "Beach",
		Rating:       4.8,
		ReviewsCount: 3900,
		ImageURL:     "https://images.unsplash.com/photo-1537996194471-e657df975ab4?w=800",
		Description:  "Tropical paradise with pristine beaches, ancient temples, and lush rice terraces.",
		Highlights:   []string{"Ubud Rice Terraces", "Tanah Lot Temple", "Seminyak Beach", "Sacred Monkey Forest"},
	},
	{
		ID:           6,
		Name:         "Barcelona",
		Country:      "Spain",
		Category:     "City Break",
		Rating:       4.7,
		ReviewsCount: 3600,
		ImageURL:     "https://images.unsplash.com/photo-1583422409516-2895a77efded?w=800",
		Description:  "Vibrant Mediterranean city famous for Gaudí's architecture, beaches, and tapas culture.",
		Highlights:   []string{"Sagrada Família", "Park Güell", "Las Ramblas", "Gothic Quarter"},
	},
	{
		ID:           7,
		Name:         "Dubai",
		Country:      "UAE",
		Category:     "Urban",
		Rating:       4.6,
		ReviewsCount: 4200,
		ImageURL:     "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?w=800",
		Description:  "Futuristic city with record-breaking architecture, luxury shopping, and desert adventures.",
		Highlights:   []string{"Burj Khalifa", "Dubai Mall", "Palm Jumeirah", "Desert Safari"},
	},
	{
		ID:           8,
		Name:         "Rome",
		Country:      "Italy",
		Category:     "City Break",
		Rating:       4.8,
		ReviewsCount: 4800,
		ImageURL:     "https://images.unsplash.com/photo-1552832230-c0197dd311b5?w=800",
		Description:  "The Eternal City where ancient ruins meet modern Italian life and incredible cuisine.",
		Highlights:   []string{"Colosseum", "Vatican City", "Trevi Fountain", "Pantheon"},
	},
}

var destinationDetails = map[int]DestinationDetail{
	1: {
		Destination:       featuredDestinations[0],
		BestTimeToVisit:   "April to June, September to November",
		AverageCostPerDay: 150,
		Currency:          "EUR",
	},
	2: {
		Destination:       featuredDestinations[1],
		BestTimeToVisit:   "March to May, September to November",
		AverageCostPerDay: 120,
		Currency:          "JPY",
	},
	// remaining destinations get detail records as they are curated
}
