package entities

// HeroClassName identifies one of the four playable classes
type HeroClassName string

// Playable classes
const (
	ClassBarbarian HeroClassName = "Barbarian"
	ClassDwarf     HeroClassName = "Dwarf"
	ClassElf       HeroClassName = "Elf"
	ClassWizard    HeroClassName = "Wizard"
)

// AllClasses lists the classes in display order
var AllClasses = []HeroClassName{ClassBarbarian, ClassDwarf, ClassElf, ClassWizard}

// HeroClass holds the base dice and point maximums of a class
type HeroClass struct {
	Name            HeroClassName `yaml:"name" json:"name"`
	BaseAttack      int           `yaml:"baseAttack" json:"baseAttack"`
	BaseDefend      int           `yaml:"baseDefend" json:"baseDefend"`
	BaseMove        int           `yaml:"baseMove" json:"baseMove"`
	MaxBodyPoints   int           `yaml:"maxBodyPoints" json:"maxBodyPoints"`
	MaxMindPoints   int           `yaml:"maxMindPoints" json:"maxMindPoints"`
	CanCastSpells   bool          `yaml:"canCastSpells" json:"canCastSpells"`
	SpellSchools    int           `yaml:"spellSchools" json:"spellSchools"`
	PortraitInitial string        `yaml:"portraitInitial" json:"portraitInitial"`
}

// ClassTable maps class names to their definitions
type ClassTable map[HeroClassName]HeroClass
