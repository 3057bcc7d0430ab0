package testutils

import (
	"github.com/KirkDiggler/heroquest-tracker/internal/catalog"
	"github.com/KirkDiggler/heroquest-tracker/internal/entities"
)

const (
	// TestHeroName is the default hero name for test fixtures
	TestHeroName = "Thorin"

	// TestTimestamp is the createdAt/updatedAt of fixture heroes
	TestTimestamp int64 = 1700000000000
)

// CreateTestHero returns a freshly created hero of class: full points,
// starting weapon, no gold. Casters get the first schools in catalog order.
func CreateTestHero(id string, class entities.HeroClassName) *entities.Hero {
	c := catalog.Default()
	def, _ := c.Class(class)

	spells := []entities.Spell{}
	if def.CanCastSpells {
		spells = c.SpellsFromSchools(entities.AllSpellSchools[:def.SpellSchools])
	}

	return &entities.Hero{
		ID:                id,
		Name:              TestHeroName,
		HeroClass:         class,
		CurrentBodyPoints: def.MaxBodyPoints,
		CurrentMindPoints: def.MaxMindPoints,
		Equipment: entities.Equipment{
			Weapon: c.StartingWeapon(class),
		},
		Spells:          spells,
		Inventory:       []entities.Item{},
		QuestsCompleted: []int{},
		CreatedAt:       TestTimestamp,
		UpdatedAt:       TestTimestamp,
	}
}

// CreateTestRoster wraps heroes in a Roster with the first one active
func CreateTestRoster(heroes ...*entities.Hero) *entities.Roster {
	roster := &entities.Roster{Heroes: heroes}
	if roster.Heroes == nil {
		roster.Heroes = []*entities.Hero{}
	}
	if len(heroes) > 0 {
		id := heroes[0].ID
		roster.CurrentHeroID = &id
	}
	return roster
}
