package render

import "go-jobboard/internal/icon"

// Surface holds the glyph vocabulary of one front end.
type Surface struct {
	Name string
	// PointGlyph is the success-style bullet in front of description points.
	PointGlyph string
	// RequirementGlyph is the star bullet in front of requirements.
	RequirementGlyph string
	Icons            map[icon.ID]string
}

// Glyph returns the surface's rendition of id, falling back to the check
// glyph for anything it does not know.
func (s Surface) Glyph(id icon.ID) string {
	if g, ok := s.Icons[id]; ok {
		return g
	}
	return s.Icons[icon.Check]
}

// Admin uses Material Icons ligature names.
var Admin = Surface{
	Name:             "admin",
	PointGlyph:       "check_circle",
	RequirementGlyph: "star",
	Icons: map[icon.ID]string{
		icon.Money:         "attach_money",
		icon.Health:        "local_hospital",
		icon.Training:      "model_training",
		icon.Education:     "school",
		icon.Travel:        "flight_takeoff",
		icon.Time:          "schedule",
		icon.Parking:       "local_parking",
		icon.Entertainment: "sports_esports",
		icon.Favorite:      "favorite",
		icon.Housing:       "home",
		icon.Check:         "check_circle",
	},
}

// Web uses Font Awesome class names.
var Web = Surface{
	Name:             "web",
	PointGlyph:       "fa-circle-check",
	RequirementGlyph: "fa-star",
	Icons: map[icon.ID]string{
		icon.Money:         "fa-money-bill-wave",
		icon.Health:        "fa-notes-medical",
		icon.Training:      "fa-chalkboard-user",
		icon.Education:     "fa-graduation-cap",
		icon.Travel:        "fa-plane",
		icon.Time:          "fa-clock",
		icon.Parking:       "fa-square-parking",
		icon.Entertainment: "fa-gamepad",
		icon.Favorite:      "fa-heart",
		icon.Housing:       "fa-house",
		icon.Check:         "fa-circle-check",
	},
}

// Mobile uses Ionicons names.
var Mobile = Surface{
	Name:             "mobile",
	PointGlyph:       "checkmark-circle",
	RequirementGlyph: "star",
	Icons: map[icon.ID]string{
		icon.Money:         "cash-outline",
		icon.Health:        "medkit-outline",
		icon.Training:      "school-outline",
		icon.Education:     "book-outline",
		icon.Travel:        "airplane-outline",
		icon.Time:          "time-outline",
		icon.Parking:       "car-outline",
		icon.Entertainment: "game-controller-outline",
		icon.Favorite:      "heart-outline",
		icon.Housing:       "home-outline",
		icon.Check:         "checkmark-circle-outline",
	},
}

// Text is used for terminals and chat messages.
var Text = Surface{
	Name:             "text",
	PointGlyph:       "✅",
	RequirementGlyph: "⭐",
	Icons: map[icon.ID]string{
		icon.Money:         "💰",
		icon.Health:        "🏥",
		icon.Training:      "📚",
		icon.Education:     "🎓",
		icon.Travel:        "✈️",
		icon.Time:          "⏰",
		icon.Parking:       "🚗",
		icon.Entertainment: "🎉",
		icon.Favorite:      "❤️",
		icon.Housing:       "🏠",
		icon.Check:         "✅",
	},
}

// SurfaceByName looks up admin, web, mobile or text.
func SurfaceByName(name string) (Surface, bool) {
	for _, s := range []Surface{Admin, Web, Mobile, Text} {
		if s.Name == name {
			return s, true
		}
	}
	return Surface{}, false
}
