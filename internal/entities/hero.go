package entities

import (
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeHero is the rpg-toolkit entity type of a hero
const EntityTypeHero = "hero"

// Hero is the tracked character record
type Hero struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	HeroClass         HeroClassName `json:"heroClass"`
	CurrentBodyPoints int           `json:"currentBodyPoints"`
	CurrentMindPoints int           `json:"currentMindPoints"`
	Equipment         Equipment     `json:"equipment"`
	Spells            []Spell       `json:"spells"`
	Gold              int           `json:"gold"`
	Inventory         []Item        `json:"inventory"`
	QuestsCompleted   []int         `json:"questsCompleted"`
	CreatedAt         int64         `json:"createdAt"`
	UpdatedAt         int64         `json:"updatedAt"`
}

var _ core.Entity = (*Hero)(nil)

// GetID implements core.Entity
func (h *Hero) GetID() string {
	return h.ID
}

// GetType implements core.Entity
func (h *Hero) GetType() string {
	return EntityTypeHero
}

// Clone returns a deep copy. Equipment pieces are catalog values and are
// shared rather than copied.
func (h *Hero) Clone() *Hero {
	if h == nil {
		return nil
	}

	clone := *h
	clone.Spells = slices.Clone(h.Spells)
	clone.Inventory = slices.Clone(h.Inventory)
	clone.QuestsCompleted = slices.Clone(h.QuestsCompleted)
	return &clone
}

// FindSpell returns the index of the spell with id, or -1
func (h *Hero) FindSpell(id string) int {
	return slices.IndexFunc(h.Spells, func(s Spell) bool { return s.ID == id })
}

// FindItem returns the index of the inventory entry with id, or -1
func (h *Hero) FindItem(id string) int {
	return slices.IndexFunc(h.Inventory, func(i Item) bool { return i.ID == id })
}

// HasCompletedQuest reports whether questID is in QuestsCompleted
func (h *Hero) HasCompletedQuest(questID int) bool {
	_, found := slices.BinarySearch(h.QuestsCompleted, questID)
	return found
}
