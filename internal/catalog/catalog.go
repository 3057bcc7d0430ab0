// Package catalog holds the static game tables: classes, equipment, spells,
// items and quests. Tables are read from an embedded YAML file and never
// change at runtime.
package catalog

import (
	_ "embed"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/heroquest-tracker/internal/entities"
	"github.com/KirkDiggler/heroquest-tracker/internal/errors"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

var defaultCatalog = mustLoadEmbedded()

// Default returns the process-wide embedded catalog
func Default() *Catalog {
	return defaultCatalog
}

type catalogFile struct {
	Classes         []entities.HeroClass              `yaml:"classes"`
	StartingWeapons map[entities.HeroClassName]string `yaml:"startingWeapons"`
	Weapons         []entities.Weapon                 `yaml:"weapons"`
	Shields         []entities.Shield                 `yaml:"shields"`
	Helmets         []entities.Helmet                 `yaml:"helmets"`
	Armor           []entities.Armor                  `yaml:"armor"`
	Spells          []entities.Spell                  `yaml:"spells"`
	Items           []entities.Item                   `yaml:"items"`
	Quests          []entities.Quest                  `yaml:"quests"`
}

// Catalog provides lookups over the game tables
type Catalog struct {
	classes         entities.ClassTable
	startingWeapons map[entities.HeroClassName]string
	weapons         []*entities.Weapon
	shields         []*entities.Shield
	helmets         []*entities.Helmet
	armor           []*entities.Armor
	spells          []entities.Spell
	items           []entities.Item
	quests          []entities.Quest
}

// Sentinels for the "nothing equipped" choice in listings
var (
	NoWeapon = &entities.Weapon{ID: entities.NoneID, Name: "None (Unarmed)", Description: "Fighting without a weapon."}
	NoShield = &entities.Shield{ID: entities.NoneID, Name: "None", Description: "No shield equipped."}
	NoHelmet = &entities.Helmet{ID: entities.NoneID, Name: "None", Description: "No helmet equipped."}
	NoArmor  = &entities.Armor{ID: entities.NoneID, Name: "None", Description: "No armor equipped."}
)

// LoadEmbedded parses the catalog compiled into the binary
func LoadEmbedded() (*Catalog, error) {
	return Parse(embeddedCatalog)
}

func mustLoadEmbedded() *Catalog {
	c, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and validates catalog YAML
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode catalog")
	}

	c := &Catalog{
		classes:         make(entities.ClassTable, len(file.Classes)),
		startingWeapons: file.StartingWeapons,
		spells:          file.Spells,
		items:           file.Items,
		quests:          file.Quests,
	}
	for _, class := range file.Classes {
		c.classes[class.Name] = class
	}
	for i := range file.Weapons {
		c.weapons = append(c.weapons, &file.Weapons[i])
	}
	for i := range file.Shields {
		c.shields = append(c.shields, &file.Shields[i])
	}
	for i := range file.Helmets {
		c.helmets = append(c.helmets, &file.Helmets[i])
	}
	for i := range file.Armor {
		c.armor = append(c.armor, &file.Armor[i])
	}

	if err := c.validate(file); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) validate(file catalogFile) error {
	vb := errors.NewValidationBuilder()

	if len(c.classes) != len(file.Classes) {
		vb.Field("classes", "contain duplicate names")
	}
	for _, name := range entities.AllClasses {
		if _, ok := c.classes[name]; !ok {
			vb.Fieldf("classes", "missing %s", name)
		}
		weaponID, ok := c.startingWeapons[name]
		if !ok {
			vb.Fieldf("startingWeapons", "missing %s", name)
			continue
		}
		if _, ok := c.Weapon(weaponID); !ok {
			vb.Fieldf("startingWeapons", "%s references unknown weapon %q", name, weaponID)
		}
	}

	checkUnique(vb, "weapons", mapIDs(file.Weapons, func(w entities.Weapon) string { return w.ID }))
	checkUnique(vb, "shields", mapIDs(file.Shields, func(s entities.Shield) string { return s.ID }))
	checkUnique(vb, "helmets", mapIDs(file.Helmets, func(h entities.Helmet) string { return h.ID }))
	checkUnique(vb, "armor", mapIDs(file.Armor, func(a entities.Armor) string { return a.ID }))
	checkUnique(vb, "spells", mapIDs(file.Spells, func(s entities.Spell) string { return s.ID }))
	checkUnique(vb, "items", mapIDs(file.Items, func(i entities.Item) string { return i.ID }))

	for _, spell := range file.Spells {
		if !slices.Contains(entities.AllSpellSchools, spell.School) {
			vb.Fieldf("spells", "%s has unknown school %q", spell.ID, spell.School)
		}
	}
	for i, quest := range file.Quests {
		if quest.ID != i+1 {
			vb.Fieldf("quests", "expected quest %d at position %d, got %d", i+1, i, quest.ID)
		}
	}

	return vb.Build()
}

func mapIDs[T any](values []T, id func(T) string) []string {
	ids := make([]string, len(values))
	for i, v := range values {
		ids[i] = id(v)
	}
	return ids
}

func checkUnique(vb *errors.ValidationBuilder, field string, ids []string) {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || id == entities.NoneID {
			vb.Fieldf(field, "invalid id %q", id)
		}
		if seen[id] {
			vb.Fieldf(field, "duplicate id %q", id)
		}
		seen[id] = true
	}
}
