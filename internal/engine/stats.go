// Package engine derives display statistics from a hero and the class table.
// Nothing here touches the store; results are recomputed on every read.
package engine

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/heroquest-tracker/internal/entities"
)

// UnarmedAttack is the attack dice of a hero without a weapon
const UnarmedAttack = 1

// ComputedStats is the derived view of a hero
type ComputedStats struct {
	TotalAttack     int
	TotalDefend     int
	TotalMove       int
	AttackBreakdown string
	DefendBreakdown string
	MaxBodyPoints   int
	MaxMindPoints   int

	CanCastSpells  bool
	DiagonalAttack bool
	Ranged         bool
	TwoHanded      bool
}

// ComputeStats resolves attack, defense and movement for hero. An equipped
// weapon replaces the class base attack. A class missing from classes
// contributes zero bases. Returns nil for a nil hero.
func ComputeStats(hero *entities.Hero, classes entities.ClassTable) *ComputedStats {
	if hero == nil {
		return nil
	}

	class := classes[hero.HeroClass]
	eq := hero.Equipment

	stats := &ComputedStats{
		MaxBodyPoints: class.MaxBodyPoints,
		MaxMindPoints: class.MaxMindPoints,
		CanCastSpells: class.CanCastSpells,
	}

	if eq.Weapon != nil {
		stats.TotalAttack = eq.Weapon.AttackDice
		stats.AttackBreakdown = part(eq.Weapon.AttackDice, eq.Weapon.Name)
		stats.DiagonalAttack = eq.Weapon.DiagonalAttack
		stats.Ranged = eq.Weapon.Ranged
		stats.TwoHanded = eq.Weapon.TwoHanded
	} else {
		stats.TotalAttack = UnarmedAttack
		stats.AttackBreakdown = part(UnarmedAttack, "unarmed")
	}

	stats.TotalDefend = class.BaseDefend
	parts := []string{part(class.BaseDefend, "base")}
	if eq.Shield != nil {
		stats.TotalDefend += eq.Shield.DefendDice
		parts = append(parts, part(eq.Shield.DefendDice, eq.Shield.Name))
	}
	if eq.Helmet != nil {
		stats.TotalDefend += eq.Helmet.DefendDice
		parts = append(parts, part(eq.Helmet.DefendDice, eq.Helmet.Name))
	}
	if eq.Armor != nil {
		stats.TotalDefend += eq.Armor.DefendDice
		parts = append(parts, part(eq.Armor.DefendDice, eq.Armor.Name))
	}
	stats.DefendBreakdown = strings.Join(parts, " + ")

	stats.TotalMove = class.BaseMove
	if eq.Armor != nil && eq.Armor.MovementPenalty {
		stats.TotalMove = 1
	}

	return stats
}

func part(dice int, source string) string {
	return fmt.Sprintf("%d (%s)", dice, source)
}
