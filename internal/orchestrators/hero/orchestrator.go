package hero

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/heroquest-tracker/internal/catalog"
	"github.com/KirkDiggler/heroquest-tracker/internal/engine"
	"github.com/KirkDiggler/heroquest-tracker/internal/entities"
	"github.com/KirkDiggler/heroquest-tracker/internal/errors"
	"github.com/KirkDiggler/heroquest-tracker/internal/pkg/clock"
	"github.com/KirkDiggler/heroquest-tracker/internal/pkg/history"
	"github.com/KirkDiggler/heroquest-tracker/internal/pkg/idgen"
)

type orchestrator struct {
	catalog   *catalog.Catalog
	classes   entities.ClassTable
	persister Persister
	clock     clock.Clock
	idGen     idgen.Generator
	eventBus  events.EventBus
	history   *history.History[*entities.Hero]

	// heroes are replaced, never modified in place, so persisted and
	// recorded pointers stay valid
	heroes   []*entities.Hero
	activeID string
}

var _ Service = (*orchestrator)(nil)

// NewOrchestrator creates a hero store seeded with cfg.Initial
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("hero")
	}

	h, err := history.New(&history.Config[*entities.Hero]{
		Clone:    (*entities.Hero).Clone,
		Capacity: cfg.HistorySize,
		Clock:    c,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create history")
	}

	o := &orchestrator{
		catalog:   cfg.Catalog,
		classes:   cfg.Catalog.ClassTable(),
		persister: cfg.Persister,
		clock:     c,
		idGen:     idGen,
		eventBus:  cfg.EventBus,
		history:   h,
		heroes:    []*entities.Hero{},
	}
	o.restore(cfg.Initial)

	return o, nil
}

func (o *orchestrator) restore(state *entities.Roster) {
	if state == nil {
		return
	}
	for _, h := range state.Heroes {
		if h == nil {
			continue
		}
		o.heroes = append(o.heroes, h.Clone())
	}
	if o.indexOf(state.ActiveID()) >= 0 {
		o.activeID = state.ActiveID()
	}
}

// CreateHero adds a hero at full points with the class starting weapon and
// makes it active. Undo history starts over.
func (o *orchestrator) CreateHero(ctx context.Context, input *CreateHeroInput) (*CreateHeroOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.InvalidArgument("hero name is required")
	}
	class, ok := o.classes[input.Class]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown hero class: %s", input.Class)
	}
	for _, school := range input.SpellSchools {
		if !slices.Contains(entities.AllSpellSchools, school) {
			return nil, errors.InvalidArgumentf("unknown spell school: %s", school)
		}
	}

	spells := []entities.Spell{}
	if class.CanCastSpells {
		spells = o.catalog.SpellsFromSchools(input.SpellSchools)
	}

	now := clock.UnixMilli(o.clock)
	created := &entities.Hero{
		ID:                o.idGen.Generate(),
		Name:              name,
		HeroClass:         class.Name,
		CurrentBodyPoints: class.MaxBodyPoints,
		CurrentMindPoints: class.MaxMindPoints,
		Equipment: entities.Equipment{
			Weapon: o.catalog.StartingWeapon(class.Name),
		},
		Spells:          spells,
		Gold:            0,
		Inventory:       []entities.Item{},
		QuestsCompleted: []int{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	o.heroes = append(o.heroes, created)
	o.activeID = created.ID
	o.history.Reset()

	slog.InfoContext(ctx, "Hero created",
		"hero_id", created.ID,
		"hero_class", created.HeroClass,
		"spell_count", len(created.Spells))

	o.persist()
	o.publish(ctx, EventHeroCreated, created, "")

	return &CreateHeroOutput{Hero: created.Clone()}, nil
}

// ValidateSpellSchools checks that schools is a valid pick for class: the
// class school count, no repeats and known schools only
func (o *orchestrator) ValidateSpellSchools(class entities.HeroClassName, schools []entities.SpellSchool) error {
	def, ok := o.classes[class]
	if !ok {
		return errors.InvalidArgumentf("unknown hero class: %s", class)
	}

	vb := errors.NewValidationBuilder()
	if !def.CanCastSpells {
		if len(schools) > 0 {
			vb.Fieldf("spell_schools", "%s cannot cast spells", class)
		}
		return vb.Build()
	}

	if len(schools) != def.SpellSchools {
		vb.Fieldf("spell_schools", "%s must choose %d spell school(s), got %d", class, def.SpellSchools, len(schools))
	}
	seen := make(map[entities.SpellSchool]bool, len(schools))
	for _, school := range schools {
		if !slices.Contains(entities.AllSpellSchools, school) {
			vb.Fieldf("spell_schools", "unknown spell school: %s", school)
			continue
		}
		if seen[school] {
			vb.Fieldf("spell_schools", "spell school chosen twice: %s", school)
		}
		seen[school] = true
	}

	return vb.Build()
}

// DeleteHero removes hero id. Deleting the active hero activates the first
// remaining one and clears undo history.
func (o *orchestrator) DeleteHero(ctx context.Context, id string) bool {
	idx := o.indexOf(id)
	if idx < 0 {
		return false
	}

	deleted := o.heroes[idx]
	o.heroes = slices.Delete(o.heroes, idx, idx+1)

	if id == o.activeID {
		o.activeID = ""
		if len(o.heroes) > 0 {
			o.activeID = o.heroes[0].ID
		}
		o.history.Reset()
	}

	slog.InfoContext(ctx, "Hero deleted",
		"hero_id", id,
		"active_hero_id", o.activeID)

	o.persist()
	o.publish(ctx, EventHeroDeleted, deleted, "")

	return true
}

// SelectHero makes hero id active and clears undo history
func (o *orchestrator) SelectHero(ctx context.Context, id string) bool {
	idx := o.indexOf(id)
	if idx < 0 {
		return false
	}

	o.activeID = id
	o.history.Reset()

	slog.DebugContext(ctx, "Hero selected", "hero_id", id)

	o.persist()
	o.publish(ctx, EventHeroSelected, o.heroes[idx], "")

	return true
}

// CurrentHero returns a copy of the active hero, or nil
func (o *orchestrator) CurrentHero() *entities.Hero {
	idx := o.activeIndex()
	if idx < 0 {
		return nil
	}
	return o.heroes[idx].Clone()
}

// Heroes returns copies of every hero in creation order
func (o *orchestrator) Heroes() []*entities.Hero {
	out := make([]*entities.Hero, len(o.heroes))
	for i, h := range o.heroes {
		out[i] = h.Clone()
	}
	return out
}

func (o *orchestrator) ActiveHeroID() string {
	return o.activeID
}

// State returns a deep copy of the persisted record
func (o *orchestrator) State() *entities.Roster {
	state := &entities.Roster{Heroes: o.Heroes()}
	if o.activeID != "" {
		id := o.activeID
		state.CurrentHeroID = &id
	}
	return state
}

// Stats computes the derived statistics of the active hero, or nil
func (o *orchestrator) Stats() *engine.ComputedStats {
	idx := o.activeIndex()
	if idx < 0 {
		return nil
	}
	return engine.ComputeStats(o.heroes[idx], o.classes)
}

// Undo restores the active hero to before its last recorded change
func (o *orchestrator) Undo(ctx context.Context) bool {
	idx := o.activeIndex()
	if idx < 0 {
		return false
	}

	label := o.history.UndoLabel()
	previous, ok := o.history.Undo(o.heroes[idx])
	if !ok {
		return false
	}
	o.heroes[idx] = previous

	slog.DebugContext(ctx, "Undo applied",
		"hero_id", previous.ID,
		"action", label)

	o.persist()
	o.publish(ctx, EventHeroUndone, previous, label)

	return true
}

// Redo re-applies the change most recently undone
func (o *orchestrator) Redo(ctx context.Context) bool {
	idx := o.activeIndex()
	if idx < 0 {
		return false
	}

	label := o.history.RedoLabel()
	next, ok := o.history.Redo()
	if !ok {
		return false
	}
	o.heroes[idx] = next

	slog.DebugContext(ctx, "Redo applied",
		"hero_id", next.ID,
		"action", label)

	o.persist()
	o.publish(ctx, EventHeroRedone, next, label)

	return true
}

func (o *orchestrator) CanUndo() bool {
	return o.history.CanUndo()
}

func (o *orchestrator) CanRedo() bool {
	return o.history.CanRedo()
}

func (o *orchestrator) UndoLabel() string {
	return o.history.UndoLabel()
}

func (o *orchestrator) RedoLabel() string {
	return o.history.RedoLabel()
}

// History lists the recorded changes of the active hero, oldest first
func (o *orchestrator) History() []history.Mark {
	return o.history.Marks()
}

// persist hands the persister a roster that shares hero pointers with the
// store; heroes are never modified after they are installed
func (o *orchestrator) persist() {
	state := &entities.Roster{Heroes: slices.Clone(o.heroes)}
	if o.activeID != "" {
		id := o.activeID
		state.CurrentHeroID = &id
	}
	o.persister.Persist(state)
}

func (o *orchestrator) indexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(o.heroes, func(h *entities.Hero) bool { return h.ID == id })
}

func (o *orchestrator) activeIndex() int {
	return o.indexOf(o.activeID)
}
