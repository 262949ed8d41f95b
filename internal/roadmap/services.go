package roadmap

import "github.com/abhisek/bizpro/internal/profile"

// Service is a recommended third-party offering.
type Service struct {
	Rank           int    `json:"rank"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	Pricing        string `json:"pricing"`
	FreeTrialInfo  string `json:"freeTrialInfo,omitempty"`
	WhyRecommended string `json:"whyRecommended"`
	AffiliateLink  string `json:"affiliateLink"`
}

// Catalog holds the services that can be suggested.
type Catalog struct {
	// Learning is always suggested first.
	Learning Service
	// Speaking is suggested when any SpeakingKeys sub-score is a weakness.
	Speaking     Service
	SpeakingKeys []string
	// Interview is suggested when the profile lists interview usage.
	Interview Service
}

// Services returns the suggestions for the facts, ranked from 1.
func Services(c Catalog, f Facts) []Service {
	out := []Service{c.Learning}
	if WeakIn(c.SpeakingKeys).Holds(f) {
		out = append(out, c.Speaking)
	}
	if UsageIncludes(profile.UsageInterview).Holds(f) {
		out = append(out, c.Interview)
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
