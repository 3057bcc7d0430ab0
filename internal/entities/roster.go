package entities

// Roster is the persisted record: every hero plus the active selection.
// Undo history is not part of it.
type Roster struct {
	Heroes        []*Hero `json:"heroes"`
	CurrentHeroID *string `json:"currentHeroId"`
}

// ActiveID returns the selected hero id or ""
func (r *Roster) ActiveID() string {
	if r == nil || r.CurrentHeroID == nil {
		return ""
	}
	return *r.CurrentHeroID
}
