package bloodtype

// Distribution maps each blood type to the percentage likelihood (0-100)
// that a child has it. Distributions returned by Compute always contain all
// eight labels and sum to 100.
type Distribution map[BloodType]float64

// Entry is one row of a distribution.
type Entry struct {
	Type        BloodType `json:"type"`
	Probability float64   `json:"probability"`
}

// Get returns the percentage for bt, or 0 if absent.
func (d Distribution) Get(bt BloodType) float64 {
	return d[bt]
}

// Total returns the sum of all percentages, added in display order.
func (d Distribution) Total() float64 {
	var total float64
	for _, e := range d.Entries() {
		total += e.Probability
	}
	return total
}

// Entries returns the distribution as rows in display order. Labels that
// are not canonical blood types are omitted.
func (d Distribution) Entries() []Entry {
	entries := make([]Entry, 0, len(canonical))
	for _, bt := range canonical {
		p, ok := d[bt]
		if !ok {
			continue
		}
		entries = append(entries, Entry{Type: bt, Probability: p})
	}
	return entries
}

// Possible returns only the entries with a non-zero probability.
func (d Distribution) Possible() []Entry {
	var entries []Entry
	for _, e := range d.Entries() {
		if e.Probability > 0 {
			entries = append(entries, e)
		}
	}
	return entries
}
