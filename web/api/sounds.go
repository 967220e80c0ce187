package api

import (
	"github.com/rohanthewiz/rweb"
)

// Sound is one entry of the royalty-free atmospheric sounds catalog.
type Sound struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Duration string `json:"duration"`
}

// royaltyFreeSounds is the fixed catalog audio widgets can pick from.
var royaltyFreeSounds = []Sound{
	{ID: "rain-forest", Name: "Rain Forest", URL: "https://www.soundjay.com/misc/sounds/rain-03.wav", Duration: "10:00"},
	{ID: "ocean-waves", Name: "Ocean Waves", URL: "https://www.soundjay.com/misc/sounds/ocean-wave-1.wav", Duration: "8:30"},
	{ID: "campfire", Name: "Campfire Crackling", URL: "https://www.soundjay.com/misc/sounds/campfire-1.wav", Duration: "5:45"},
	{ID: "wind-chimes", Name: "Wind Chimes", URL: "https://www.soundjay.com/misc/sounds/wind-chimes-1.wav", Duration: "3:20"},
}

// RoyaltyFreeSounds handles GET /api/royalty-free-sounds
func RoyaltyFreeSounds(ctx rweb.Context) error {
	return ctx.WriteJSON(map[string][]Sound{"sounds": royaltyFreeSounds})
}
