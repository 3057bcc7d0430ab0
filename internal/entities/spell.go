package entities

// SpellSchool is one of the four elemental schools
type SpellSchool string

// Spell schools in catalog order
const (
	SchoolAir   SpellSchool = "Air"
	SchoolEarth SpellSchool = "Earth"
	SchoolFire  SpellSchool = "Fire"
	SchoolWater SpellSchool = "Water"
)

// AllSpellSchools lists the schools in display order
var AllSpellSchools = []SpellSchool{SchoolAir, SchoolEarth, SchoolFire, SchoolWater}

// Spell is a hero's copy of a catalog spell; Used is per hero
type Spell struct {
	ID          string      `yaml:"id" json:"id"`
	Name        string      `yaml:"name" json:"name"`
	School      SpellSchool `yaml:"school" json:"school"`
	Description string      `yaml:"description" json:"description"`
	Used        bool        `yaml:"-" json:"used"`
}
