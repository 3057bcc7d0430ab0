// Package hero implements the hero store: the party of tracked heroes, the
// active selection and every mutation a player can make, each one undoable.
package hero

//go:generate mockgen -destination=mock/mock_persister.go -package=heromock github.com/KirkDiggler/heroquest-tracker/internal/orchestrators/hero Persister

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/heroquest-tracker/internal/catalog"
	"github.com/KirkDiggler/heroquest-tracker/internal/engine"
	"github.com/KirkDiggler/heroquest-tracker/internal/entities"
	"github.com/KirkDiggler/heroquest-tracker/internal/errors"
	"github.com/KirkDiggler/heroquest-tracker/internal/pkg/clock"
	"github.com/KirkDiggler/heroquest-tracker/internal/pkg/history"
	"github.com/KirkDiggler/heroquest-tracker/internal/pkg/idgen"
)

// History labels, one per kind of mutation
const (
	LabelUpdateName         = "updateName"
	LabelSetBodyPoints      = "setBodyPoints"
	LabelSetMindPoints      = "setMindPoints"
	LabelEquipWeapon        = "equipWeapon"
	LabelEquipShield        = "equipShield"
	LabelEquipHelmet        = "equipHelmet"
	LabelEquipArmor         = "equipArmor"
	LabelToggleSpell        = "toggleSpell"
	LabelResetSpells        = "resetSpells"
	LabelSetGold            = "setGold"
	LabelAddItem            = "addItem"
	LabelRemoveItem         = "removeItem"
	LabelUpdateItemQuantity = "updateItemQuantity"
	LabelToggleQuest        = "toggleQuest"
)

// Event types published on the configured bus
const (
	EventHeroCreated  = "heroquest.hero.created"
	EventHeroDeleted  = "heroquest.hero.deleted"
	EventHeroSelected = "heroquest.hero.selected"
	EventHeroMutated  = "heroquest.hero.mutated"
	EventHeroUndone   = "heroquest.hero.undone"
	EventHeroRedone   = "heroquest.hero.redone"

	// ContextKeyAction holds the history label of mutated, undone and redone events
	ContextKeyAction = "action"
)

// Persister receives the full roster after every change. Implementations
// must not block; the store treats persistence as best effort.
type Persister interface {
	Persist(state *entities.Roster)
}

// Service is the hero store. It is not safe for concurrent use: one caller
// dispatches one operation at a time.
//
// Mutations act on the active hero and silently do nothing when there is
// none, when the target spell, item or quest does not exist, or when the
// change would break an equipment rule.
type Service interface {
	// Lifecycle
	CreateHero(ctx context.Context, input *CreateHeroInput) (*CreateHeroOutput, error)
	ValidateSpellSchools(class entities.HeroClassName, schools []entities.SpellSchool) error
	DeleteHero(ctx context.Context, id string) bool
	SelectHero(ctx context.Context, id string) bool

	// Reads
	CurrentHero() *entities.Hero
	Heroes() []*entities.Hero
	ActiveHeroID() string
	State() *entities.Roster
	Stats() *engine.ComputedStats

	// Mutations
	UpdateHeroName(ctx context.Context, name string)
	SetBodyPoints(ctx context.Context, points int)
	AdjustBodyPoints(ctx context.Context, delta int)
	SetMindPoints(ctx context.Context, points int)
	AdjustMindPoints(ctx context.Context, delta int)
	EquipWeapon(ctx context.Context, weapon *entities.Weapon)
	EquipShield(ctx context.Context, shield *entities.Shield)
	EquipHelmet(ctx context.Context, helmet *entities.Helmet)
	EquipArmor(ctx context.Context, armor *entities.Armor)
	ToggleSpellUsed(ctx context.Context, spellID string)
	ResetAllSpells(ctx context.Context)
	SetGold(ctx context.Context, gold int)
	AdjustGold(ctx context.Context, delta int)
	AddItem(ctx context.Context, item entities.Item)
	RemoveItem(ctx context.Context, itemID string)
	UpdateItemQuantity(ctx context.Context, itemID string, quantity int)
	UseItem(ctx context.Context, itemID string)
	ToggleQuestCompleted(ctx context.Context, questID int)

	// History
	Undo(ctx context.Context) bool
	Redo(ctx context.Context) bool
	CanUndo() bool
	CanRedo() bool
	UndoLabel() string
	RedoLabel() string
	History() []history.Mark
}

// CreateHeroInput describes a new hero
type CreateHeroInput struct {
	Name         string
	Class        entities.HeroClassName
	SpellSchools []entities.SpellSchool
}

// CreateHeroOutput holds a copy of the created hero
type CreateHeroOutput struct {
	Hero *entities.Hero
}

// Config holds the dependencies for the hero store
type Config struct {
	Catalog   *catalog.Catalog
	Persister Persister

	// Optional
	Clock       clock.Clock
	IDGenerator idgen.Generator
	EventBus    events.EventBus
	HistorySize int
	// Initial is the roster loaded from storage; nil starts empty
	Initial *entities.Roster
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Persister == nil {
		vb.RequiredField("Persister")
	}
	if c.HistorySize < 0 {
		vb.Field("HistorySize", "must not be negative")
	}

	return vb.Build()
}
