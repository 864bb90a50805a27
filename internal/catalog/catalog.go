package catalog

import (
	"sort"
)

// Profile holds the national-average coefficients for a single animal.
// Yield and water figures are per head; yield is already annualised.
type Profile struct {
	GrazingAcres float64 `json:"grazing_acres"`
	FeedAcres    float64 `json:"feed_acres"`
	FeedCost     float64 `json:"feed_cost"`
	Yield        string  `json:"yield"`
	YieldNumeric float64 `json:"yield_numeric"`
	YieldUnit    string  `json:"yield_unit"`
	WaterGallons float64 `json:"water_gallons"`
}

// Entry pairs an animal identifier with its profile.
type Entry struct {
	ID      string
	Profile Profile
}

// Catalog provides read-only access to animal profiles.
type Catalog interface {
	Lookup(id string) (Profile, bool)
	IDs() []string
	Profiles() []Entry
}

// Static is an immutable in-process catalog, safe for concurrent use.
type Static struct {
	profiles map[string]Profile
	ids      []string
}

var national = newStatic(nationalAverages)

// National returns the catalog of United States national averages.
func National() *Static {
	return national
}

func newStatic(src map[string]Profile) *Static {
	profiles := make(map[string]Profile, len(src))
	ids := make([]string, 0, len(src))
	for id, p := range src {
		profiles[id] = p
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return &Static{profiles: profiles, ids: ids}
}

// Lookup returns the profile registered under id.
func (s *Static) Lookup(id string) (Profile, bool) {
	p, ok := s.profiles[id]
	return p, ok
}

// IDs returns a sorted copy of the supported animal identifiers.
func (s *Static) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Profiles returns a copy of every profile, sorted by identifier.
func (s *Static) Profiles() []Entry {
	out := make([]Entry, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, Entry{ID: id, Profile: s.profiles[id]})
	}
	return out
}

// Len reports the number of supported animals.
func (s *Static) Len() int {
	return len(s.ids)
}
