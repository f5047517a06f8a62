package domain

type SeatClass string

const (
	SeatClassEconomy  SeatClass = "economy"
	SeatClassBusiness SeatClass = "business"
)

// Valid reports whether c is a known class.
func (c SeatClass) Valid() bool {
	return c == SeatClassEconomy || c == SeatClassBusiness
}

// Prefix is the seat identifier prefix for the class.
func (c SeatClass) Prefix() string {
	if c == SeatClassBusiness {
		return "B"
	}
	return "E"
}

type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "available"
	SeatStatusOccupied  SeatStatus = "occupied"
	SeatStatusSelected  SeatStatus = "selected"
)

// Seat is derived from the seat map and occupancy, never persisted.
type Seat struct {
	ID     string     `json:"id"`
	Class  SeatClass  `json:"class"`
	Row    int        `json:"row"`
	Status SeatStatus `json:"status"`
}

// SeatSet is a set of seat identifiers.
type SeatSet map[string]struct{}

func NewSeatSet(ids ...string) SeatSet {
	s := make(SeatSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s SeatSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Overlap returns the members of requested found in s, in request order, without duplicates.
func (s SeatSet) Overlap(requested []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(requested))
	for _, id := range requested {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if s.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
