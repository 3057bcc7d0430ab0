// Package builders provides test data builders for creating test fixtures
package builders

import (
	"slices"

	"github.com/KirkDiggler/heroquest-tracker/internal/catalog"
	"github.com/KirkDiggler/heroquest-tracker/internal/entities"
	"github.com/KirkDiggler/heroquest-tracker/internal/testutils"
)

// HeroBuilder provides a fluent interface for building test Hero instances.
// Equipment and items are looked up in the embedded catalog; unknown ids
// leave the slot empty.
type HeroBuilder struct {
	hero    *entities.Hero
	catalog *catalog.Catalog
}

// NewHeroBuilder starts from a new Barbarian with id "hero-test-1"
func NewHeroBuilder() *HeroBuilder {
	return &HeroBuilder{
		hero:    testutils.CreateTestHero("hero-test-1", entities.ClassBarbarian),
		catalog: catalog.Default(),
	}
}

// WithID sets the hero ID
func (b *HeroBuilder) WithID(id string) *HeroBuilder {
	b.hero.ID = id
	return b
}

// WithName sets the name
func (b *HeroBuilder) WithName(name string) *HeroBuilder {
	b.hero.Name = name
	return b
}

// AsClass rebuilds the hero as a fresh hero of class, keeping ID and name
func (b *HeroBuilder) AsClass(class entities.HeroClassName) *HeroBuilder {
	fresh := testutils.CreateTestHero(b.hero.ID, class)
	fresh.Name = b.hero.Name
	b.hero = fresh
	return b
}

// WithBodyPoints sets current body points without clamping
func (b *HeroBuilder) WithBodyPoints(points int) *HeroBuilder {
	b.hero.CurrentBodyPoints = points
	return b
}

// WithMindPoints sets current mind points without clamping
func (b *HeroBuilder) WithMindPoints(points int) *HeroBuilder {
	b.hero.CurrentMindPoints = points
	return b
}

// WithGold sets the gold
func (b *HeroBuilder) WithGold(gold int) *HeroBuilder {
	b.hero.Gold = gold
	return b
}

// WithWeapon equips the catalog weapon id; "" unequips
func (b *HeroBuilder) WithWeapon(id string) *HeroBuilder {
	b.hero.Equipment.Weapon, _ = b.catalog.Weapon(id)
	return b
}

// WithShield equips the catalog shield id
func (b *HeroBuilder) WithShield(id string) *HeroBuilder {
	b.hero.Equipment.Shield, _ = b.catalog.Shield(id)
	return b
}

// WithHelmet equips the catalog helmet id
func (b *HeroBuilder) WithHelmet(id string) *HeroBuilder {
	b.hero.Equipment.Helmet, _ = b.catalog.Helmet(id)
	return b
}

// WithArmor equips the catalog armor id
func (b *HeroBuilder) WithArmor(id string) *HeroBuilder {
	b.hero.Equipment.Armor, _ = b.catalog.Armor(id)
	return b
}

// WithSpellSchools replaces the spells with those of schools
func (b *HeroBuilder) WithSpellSchools(schools ...entities.SpellSchool) *HeroBuilder {
	b.hero.Spells = b.catalog.SpellsFromSchools(schools)
	return b
}

// WithItem adds quantity units of catalog item id
func (b *HeroBuilder) WithItem(id string, quantity int) *HeroBuilder {
	if item, ok := b.catalog.NewItem(id, quantity); ok {
		b.hero.Inventory = append(b.hero.Inventory, item)
	}
	return b
}

// WithQuestsCompleted marks quests complete, keeping the list sorted
func (b *HeroBuilder) WithQuestsCompleted(ids ...int) *HeroBuilder {
	b.hero.QuestsCompleted = append(b.hero.QuestsCompleted, ids...)
	slices.Sort(b.hero.QuestsCompleted)
	b.hero.QuestsCompleted = slices.Compact(b.hero.QuestsCompleted)
	return b
}

// Build returns a copy of the hero
func (b *HeroBuilder) Build() *entities.Hero {
	return b.hero.Clone()
}
