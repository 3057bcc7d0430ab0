package catalog

import (
	"slices"

	"github.com/KirkDiggler/heroquest-tracker/internal/entities"
)

// ClassTable returns a copy of the class definitions
func (c *Catalog) ClassTable() entities.ClassTable {
	table := make(entities.ClassTable, len(c.classes))
	for name, class := range c.classes {
		table[name] = class
	}
	return table
}

// Class looks up a class by name
func (c *Catalog) Class(name entities.HeroClassName) (entities.HeroClass, bool) {
	class, ok := c.classes[name]
	return class, ok
}

// StartingWeapon returns the weapon a new hero of class carries, or nil
func (c *Catalog) StartingWeapon(class entities.HeroClassName) *entities.Weapon {
	id, ok := c.startingWeapons[class]
	if !ok {
		return nil
	}
	weapon, _ := c.Weapon(id)
	return weapon
}

// Weapon looks up a weapon by id
func (c *Catalog) Weapon(id string) (*entities.Weapon, bool) {
	return findByID(c.weapons, id, func(w *entities.Weapon) string { return w.ID })
}

// Weapons returns every weapon, artifacts included
func (c *Catalog) Weapons() []*entities.Weapon {
	return slices.Clone(c.weapons)
}

// AvailableWeapons lists the weapons class may pick, excluding artifacts
func (c *Catalog) AvailableWeapons(class entities.HeroClassName) []*entities.Weapon {
	var out []*entities.Weapon
	for _, w := range c.weapons {
		if w.AllowedFor(class) && !w.IsArtifact {
			out = append(out, w)
		}
	}
	return out
}

// Shield looks up a shield by id
func (c *Catalog) Shield(id string) (*entities.Shield, bool) {
	return findByID(c.shields, id, func(s *entities.Shield) string { return s.ID })
}

// Shields returns every shield
func (c *Catalog) Shields() []*entities.Shield {
	return slices.Clone(c.shields)
}

// AvailableShields lists the shields class may pick
func (c *Catalog) AvailableShields(class entities.HeroClassName) []*entities.Shield {
	return filterAllowed(c.shields, func(s *entities.Shield) bool { return s.AllowedFor(class) })
}

// Helmet looks up a helmet by id
func (c *Catalog) Helmet(id string) (*entities.Helmet, bool) {
	return findByID(c.helmets, id, func(h *entities.Helmet) string { return h.ID })
}

// Helmets returns every helmet
func (c *Catalog) Helmets() []*entities.Helmet {
	return slices.Clone(c.helmets)
}

// AvailableHelmets lists the helmets class may pick
func (c *Catalog) AvailableHelmets(class entities.HeroClassName) []*entities.Helmet {
	return filterAllowed(c.helmets, func(h *entities.Helmet) bool { return h.AllowedFor(class) })
}

// Armor looks up body armor by id
func (c *Catalog) Armor(id string) (*entities.Armor, bool) {
	return findByID(c.armor, id, func(a *entities.Armor) string { return a.ID })
}

// ArmorPieces returns every body armor
func (c *Catalog) ArmorPieces() []*entities.Armor {
	return slices.Clone(c.armor)
}

// AvailableArmor lists the body armor class may pick
func (c *Catalog) AvailableArmor(class entities.HeroClassName) []*entities.Armor {
	return filterAllowed(c.armor, func(a *entities.Armor) bool { return a.AllowedFor(class) })
}

// Spell returns a fresh, unused copy of the spell with id
func (c *Catalog) Spell(id string) (entities.Spell, bool) {
	idx := slices.IndexFunc(c.spells, func(s entities.Spell) bool { return s.ID == id })
	if idx < 0 {
		return entities.Spell{}, false
	}
	return c.spells[idx], true
}

// SpellsForSchool returns fresh, unused copies of the spells of school in catalog order
func (c *Catalog) SpellsForSchool(school entities.SpellSchool) []entities.Spell {
	var out []entities.Spell
	for _, s := range c.spells {
		if s.School == school {
			out = append(out, s)
		}
	}
	return out
}

// SpellsFromSchools concatenates SpellsForSchool for each school, skipping repeats
func (c *Catalog) SpellsFromSchools(schools []entities.SpellSchool) []entities.Spell {
	out := []entities.Spell{}
	seen := make(map[entities.SpellSchool]bool, len(schools))
	for _, school := range schools {
		if seen[school] {
			continue
		}
		seen[school] = true
		out = append(out, c.SpellsForSchool(school)...)
	}
	return out
}

// Item returns the definition of item id with a quantity of zero
func (c *Catalog) Item(id string) (entities.Item, bool) {
	idx := slices.IndexFunc(c.items, func(i entities.Item) bool { return i.ID == id })
	if idx < 0 {
		return entities.Item{}, false
	}
	return c.items[idx], true
}

// NewItem returns an inventory entry for id holding quantity units
func (c *Catalog) NewItem(id string, quantity int) (entities.Item, bool) {
	item, ok := c.Item(id)
	if !ok {
		return entities.Item{}, false
	}
	item.Quantity = quantity
	return item, true
}

// Items returns every item definition
func (c *Catalog) Items() []entities.Item {
	return slices.Clone(c.items)
}

// ItemsByCategory returns the item definitions in category
func (c *Catalog) ItemsByCategory(category entities.ItemCategory) []entities.Item {
	var out []entities.Item
	for _, i := range c.items {
		if i.Category == category {
			out = append(out, i)
		}
	}
	return out
}

// PurchasableItems returns the items with a gold cost
func (c *Catalog) PurchasableItems() []entities.Item {
	var out []entities.Item
	for _, i := range c.items {
		if i.GoldCost > 0 {
			out = append(out, i)
		}
	}
	return out
}

// Quest looks up a quest by number
func (c *Catalog) Quest(id int) (entities.Quest, bool) {
	if id < 1 || id > len(c.quests) {
		return entities.Quest{}, false
	}
	return c.quests[id-1], true
}

// Quests returns every quest in order
func (c *Catalog) Quests() []entities.Quest {
	return slices.Clone(c.quests)
}

func findByID[T any](values []*T, id string, key func(*T) string) (*T, bool) {
	for _, v := range values {
		if key(v) == id {
			return v, true
		}
	}
	return nil, false
}

func filterAllowed[T any](values []*T, allowed func(*T) bool) []*T {
	var out []*T
	for _, v := range values {
		if allowed(v) {
			out = append(out, v)
		}
	}
	return out
}
