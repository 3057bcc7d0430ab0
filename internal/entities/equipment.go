package entities

import "slices"

// NoneID is the id of the "nothing equipped" entry in catalog listings
const NoneID = "none"

// Weapon is a catalog weapon. Pieces are shared between heroes and never mutated.
type Weapon struct {
	ID                string          `yaml:"id" json:"id"`
	Name              string          `yaml:"name" json:"name"`
	AttackDice        int             `yaml:"attackDice" json:"attackDice"`
	DiagonalAttack    bool            `yaml:"diagonalAttack" json:"diagonalAttack"`
	TwoHanded         bool            `yaml:"twoHanded" json:"twoHanded"`
	GoldCost          int             `yaml:"goldCost" json:"goldCost"`
	RestrictedClasses []HeroClassName `yaml:"restrictedClasses,omitempty" json:"restrictedClasses,omitempty"`
	Description       string          `yaml:"description" json:"description"`
	Throwable         bool            `yaml:"throwable,omitempty" json:"throwable,omitempty"`
	Ranged            bool            `yaml:"ranged,omitempty" json:"ranged,omitempty"`
	IsArtifact        bool            `yaml:"isArtifact,omitempty" json:"isArtifact,omitempty"`
}

// Shield is a catalog shield
type Shield struct {
	ID                string          `yaml:"id" json:"id"`
	Name              string          `yaml:"name" json:"name"`
	DefendDice        int             `yaml:"defendDice" json:"defendDice"`
	GoldCost          int             `yaml:"goldCost" json:"goldCost"`
	RestrictedClasses []HeroClassName `yaml:"restrictedClasses,omitempty" json:"restrictedClasses,omitempty"`
	Description       string          `yaml:"description" json:"description"`
}

// Helmet is a catalog helmet
type Helmet struct {
	ID                string          `yaml:"id" json:"id"`
	Name              string          `yaml:"name" json:"name"`
	DefendDice        int             `yaml:"defendDice" json:"defendDice"`
	GoldCost          int             `yaml:"goldCost" json:"goldCost"`
	RestrictedClasses []HeroClassName `yaml:"restrictedClasses,omitempty" json:"restrictedClasses,omitempty"`
	Description       string          `yaml:"description" json:"description"`
}

// Armor is a catalog body armor. MovementPenalty forces movement to one die.
type Armor struct {
	ID                string          `yaml:"id" json:"id"`
	Name              string          `yaml:"name" json:"name"`
	DefendDice        int             `yaml:"defendDice" json:"defendDice"`
	GoldCost          int             `yaml:"goldCost" json:"goldCost"`
	RestrictedClasses []HeroClassName `yaml:"restrictedClasses,omitempty" json:"restrictedClasses,omitempty"`
	Description       string          `yaml:"description" json:"description"`
	MovementPenalty   bool            `yaml:"movementPenalty,omitempty" json:"movementPenalty,omitempty"`
}

// Equipment holds the four slots; nil means nothing equipped
type Equipment struct {
	Weapon *Weapon `json:"weapon"`
	Shield *Shield `json:"shield"`
	Helmet *Helmet `json:"helmet"`
	Armor  *Armor  `json:"armor"`
}

// AllowedFor reports whether class may use the weapon
func (w *Weapon) AllowedFor(class HeroClassName) bool {
	return !slices.Contains(w.RestrictedClasses, class)
}

// AllowedFor reports whether class may use the shield
func (s *Shield) AllowedFor(class HeroClassName) bool {
	return !slices.Contains(s.RestrictedClasses, class)
}

// AllowedFor reports whether class may use the helmet
func (h *Helmet) AllowedFor(class HeroClassName) bool {
	return !slices.Contains(h.RestrictedClasses, class)
}

// AllowedFor reports whether class may use the armor
func (a *Armor) AllowedFor(class HeroClassName) bool {
	return !slices.Contains(a.RestrictedClasses, class)
}
