// Package validate runs the environment checks behind glaze doctor.
package validate

// Status grades one checked item.
type Status int

const (
	StatusSuccess Status = iota
	StatusWarning
	StatusPending
	StatusError
)

// Item is one line of a check's report.
type Item struct {
	Name    string
	Status  Status
	Details string
}

// Result is the report of one check, or of several merged together.
type Result struct {
	Items []Item
}

// Add records one item.
func (r *Result) Add(status Status, name, details string) {
	r.Items = append(r.Items, Item{Name: name, Status: status, Details: details})
}

// Merge appends other's items, keeping report order.
func (r *Result) Merge(other Result) {
	r.Items = append(r.Items, other.Items...)
}

// Count reports how many items carry status.
func (r *Result) Count(status Status) int {
	n := 0
	for _, item := range r.Items {
		if item.Status == status {
			n++
		}
	}
	return n
}

// HasErrors reports whether any item failed outright.
func (r *Result) HasErrors() bool {
	return r.Count(StatusError) > 0
}
