package model

// Event is one index entry: the folder name (which the renderer needs to
// locate the cover image) plus the folder's metadata.
type Event struct {
	Folder string `json:"folder"`
	Meta
}

// Less reports whether e sorts before other: date ascending, then time, then
// folder name so the order is total. The constrained YYYY-MM-DD and HH:MM
// formats make plain string comparison chronological.
func (e Event) Less(other Event) bool {
	if e.Date != other.Date {
		return e.Date < other.Date
	}
	if e.Time != other.Time {
		return e.Time < other.Time
	}
	return e.Folder < other.Folder
}
