// Package seatmap derives the seat topology of a flight from its seat count.
//
// Identifiers are the class prefix followed by a 1-based ordinal within the class
// (B1..Bn, E1..Em). The same inputs always produce the same identifiers, so they
// stay comparable with the seat lists stored in bookings.
package seatmap

import (
	"strconv"

	"github.com/Domenick1991/seatbooking/internal/domain"
)

type Layout struct {
	BusinessSharePercent int
	SeatsPerRow          int
}

func DefaultLayout() Layout {
	return Layout{BusinessSharePercent: 20, SeatsPerRow: 6}
}

func (l Layout) normalized() Layout {
	if l.SeatsPerRow <= 0 {
		l.SeatsPerRow = 6
	}
	if l.BusinessSharePercent < 0 {
		l.BusinessSharePercent = 0
	}
	if l.BusinessSharePercent > 100 {
		l.BusinessSharePercent = 100
	}
	return l
}

type Entry struct {
	ID      string
	Class   domain.SeatClass
	Row     int
	Ordinal int
}

type SeatMap struct {
	total    int
	business int
	perRow   int
	entries  []Entry
	index    map[string]int
}

// Generate builds the seat map for total seats. Business seats are the floor of the
// configured share; rows never mix classes.
func Generate(total int, layout Layout) *SeatMap {
	layout = layout.normalized()
	if total < 0 {
		total = 0
	}
	business := total * layout.BusinessSharePercent / 100
	economy := total - business

	m := &SeatMap{
		total:    total,
		business: business,
		perRow:   layout.SeatsPerRow,
		entries:  make([]Entry, 0, total),
		index:    make(map[string]int, total),
	}

	row := 0
	row = m.appendBlock(domain.SeatClassBusiness, business, row)
	m.appendBlock(domain.SeatClassEconomy, economy, row)
	return m
}

func (m *SeatMap) appendBlock(class domain.SeatClass, count, row int) int {
	for n := 1; n <= count; n++ {
		if (n-1)%m.perRow == 0 {
			row++
		}
		id := class.Prefix() + strconv.Itoa(n)
		m.index[id] = len(m.entries)
		m.entries = append(m.entries, Entry{ID: id, Class: class, Row: row, Ordinal: n})
	}
	return row
}

// ForFlight generates the map for a flight record.
func ForFlight(f *domain.Flight, layout Layout) *SeatMap {
	return Generate(f.Capacity(), layout)
}

func (m *SeatMap) Total() int { return m.total }

// ClassSize returns the number of seats in class.
func (m *SeatMap) ClassSize(class domain.SeatClass) int {
	if class == domain.SeatClassBusiness {
		return m.business
	}
	return m.total - m.business
}

func (m *SeatMap) Lookup(id string) (Entry, bool) {
	i, ok := m.index[id]
	if !ok {
		return Entry{}, false
	}
	return m.entries[i], true
}

func (m *SeatMap) Contains(id string) bool {
	_, ok := m.index[id]
	return ok
}

// Seats returns all entries, business block first.
func (m *SeatMap) Seats() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Rows groups entries by row number.
func (m *SeatMap) Rows() [][]Entry {
	var rows [][]Entry
	for _, e := range m.entries {
		if len(rows) < e.Row {
			rows = append(rows, make([]Entry, 0, m.perRow))
		}
		rows[e.Row-1] = append(rows[e.Row-1], e)
	}
	return rows
}
