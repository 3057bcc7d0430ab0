package main

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/heroquest-tracker/internal/entities"
	"github.com/KirkDiggler/heroquest-tracker/internal/errors"
	"github.com/KirkDiggler/heroquest-tracker/internal/orchestrators/hero"
)

// action is one store operation reachable both as a subcommand and from the
// shell
type action struct {
	name    string
	usage   string
	short   string
	minArgs int
	// maxArgs below zero means no limit
	maxArgs int
	// offline actions never open storage
	offline bool
	// shellOnly actions need history, which lives only as long as a shell
	shellOnly bool
	run       func(ctx context.Context, a *app, args []string) error
}

func actions() []action {
	return []action{
		{name: "create", usage: "<name> <class> [school...]", short: "Create a hero and select it", minArgs: 2, maxArgs: -1, run: runCreate},
		{name: "list", short: "List heroes", run: runList},
		{name: "select", usage: "<hero>", short: "Select the active hero by id, list number or name", minArgs: 1, maxArgs: 1, run: runSelect},
		{name: "delete", usage: "<hero>", short: "Delete a hero", minArgs: 1, maxArgs: 1, run: runDelete},
		{name: "show", short: "Show the active hero sheet", run: runShow},
		{name: "catalog", usage: "<classes|weapons|shields|helmets|armor|spells|items|quests>", short: "List catalog entries", minArgs: 1, maxArgs: 1, offline: true, run: runCatalog},
		{name: "name", usage: "<new name>", short: "Rename the active hero", minArgs: 1, maxArgs: -1, run: runName},
		{name: "body", usage: "<n|+n|-n>", short: "Set or adjust body points", minArgs: 1, maxArgs: 1, run: runBody},
		{name: "mind", usage: "<n|+n|-n>", short: "Set or adjust mind points", minArgs: 1, maxArgs: 1, run: runMind},
		{name: "gold", usage: "<n|+n|-n>", short: "Set or adjust gold", minArgs: 1, maxArgs: 1, run: runGold},
		{name: "equip", usage: "<weapon|shield|helmet|armor> <id|none>", short: "Equip or unequip a slot", minArgs: 2, maxArgs: 2, run: runEquip},
		{name: "spell", usage: "<spell-id|reset>", short: "Toggle a spell used, or reset all spells", minArgs: 1, maxArgs: 1, run: runSpell},
		{name: "item", usage: "<add|remove|set|use> <item-id> [quantity]", short: "Change the inventory", minArgs: 2, maxArgs: 3, run: runItem},
		{name: "quest", usage: "<number>", short: "Toggle a quest completed", minArgs: 1, maxArgs: 1, run: runQuest},
		{name: "undo", short: "Undo the last change", shellOnly: true, run: runUndo},
		{name: "redo", short: "Redo the last undone change", shellOnly: true, run: runRedo},
		{name: "history", short: "List the changes that can be undone", shellOnly: true, run: runHistory},
	}
}

func findAction(name string) (action, bool) {
	all := actions()
	idx := slices.IndexFunc(all, func(a action) bool { return a.name == name })
	if idx < 0 {
		return action{}, false
	}
	return all[idx], true
}

func runCreate(ctx context.Context, a *app, args []string) error {
	class, err := parseClass(args[1])
	if err != nil {
		return err
	}
	schools, err := parseSchools(args[2:])
	if err != nil {
		return err
	}
	if err := a.store.ValidateSpellSchools(class, schools); err != nil {
		return err
	}

	out, err := a.store.CreateHero(ctx, &hero.CreateHeroInput{
		Name:         args[0],
		Class:        class,
		SpellSchools: schools,
	})
	if err != nil {
		return err
	}

	a.out.successf("Created %s the %s (%s)", out.Hero.Name, out.Hero.HeroClass, out.Hero.ID)
	return nil
}

func runList(_ context.Context, a *app, _ []string) error {
	a.out.heroList(a.store.Heroes(), a.store.ActiveHeroID(), a.catalog.ClassTable())
	return nil
}

func runSelect(ctx context.Context, a *app, args []string) error {
	id, err := resolveHero(a.store.Heroes(), args[0])
	if err != nil {
		return err
	}
	a.store.SelectHero(ctx, id)
	a.out.successf("Selected %s", a.store.CurrentHero().Name)
	return nil
}

func runDelete(ctx context.Context, a *app, args []string) error {
	heroes := a.store.Heroes()
	id, err := resolveHero(heroes, args[0])
	if err != nil {
		return err
	}
	name := heroes[slices.IndexFunc(heroes, func(h *entities.Hero) bool { return h.ID == id })].Name

	a.store.DeleteHero(ctx, id)

	a.out.successf("Deleted %s", name)
	if current := a.store.CurrentHero(); current != nil {
		a.out.linef("Active hero: %s", current.Name)
	}
	return nil
}

func runShow(_ context.Context, a *app, _ []string) error {
	h, err := a.currentHero()
	if err != nil {
		return err
	}
	a.out.heroSheet(h, a.store.Stats(), a.catalog)
	return nil
}

func runCatalog(_ context.Context, a *app, args []string) error {
	return a.out.catalog(a.catalog, strings.ToLower(args[0]))
}

func runName(ctx context.Context, a *app, args []string) error {
	if _, err := a.currentHero(); err != nil {
		return err
	}
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return errors.InvalidArgument("name must not be empty")
	}
	a.store.UpdateHeroName(ctx, name)
	a.out.successf("Renamed to %s", a.store.CurrentHero().Name)
	return nil
}

func runBody(ctx context.Context, a *app, args []string) error {
	return changePoints(ctx, a, args[0], "Body points",
		a.store.SetBodyPoints, a.store.AdjustBodyPoints,
		func(h *entities.Hero, class entities.HeroClass) (int, int) {
			return h.CurrentBodyPoints, class.MaxBodyPoints
		})
}

func runMind(ctx context.Context, a *app, args []string) error {
	return changePoints(ctx, a, args[0], "Mind points",
		a.store.SetMindPoints, a.store.AdjustMindPoints,
		func(h *entities.Hero, class entities.HeroClass) (int, int) {
			return h.CurrentMindPoints, class.MaxMindPoints
		})
}

func changePoints(
	ctx context.Context,
	a *app,
	arg, title string,
	set, adjust func(context.Context, int),
	read func(*entities.Hero, entities.HeroClass) (current, maximum int),
) error {
	if _, err := a.currentHero(); err != nil {
		return err
	}
	value, relative, err := parseAmount(arg)
	if err != nil {
		return err
	}
	if relative {
		adjust(ctx, value)
	} else {
		set(ctx, value)
	}

	h := a.store.CurrentHero()
	class, _ := a.catalog.Class(h.HeroClass)
	current, maximum := read(h, class)
	a.out.successf("%s: %d/%d", title, current, maximum)
	return nil
}

func runGold(ctx context.Context, a *app, args []string) error {
	if _, err := a.currentHero(); err != nil {
		return err
	}
	value, relative, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	if relative {
		a.store.AdjustGold(ctx, value)
	} else {
		a.store.SetGold(ctx, value)
	}
	a.out.successf("Gold: %d", a.store.CurrentHero().Gold)
	return nil
}

func runEquip(ctx context.Context, a *app, args []string) error {
	h, err := a.currentHero()
	if err != nil {
		return err
	}
	slot, id := strings.ToLower(args[0]), strings.ToLower(args[1])
	none := id == entities.NoneID

	switch slot {
	case "weapon":
		if none {
			a.store.EquipWeapon(ctx, nil)
			break
		}
		w, ok := a.catalog.Weapon(id)
		if !ok {
			return errors.NotFoundf("unknown weapon %q", id)
		}
		if !w.AllowedFor(h.HeroClass) {
			return errors.FailedPreconditionf("a %s cannot use the %s", h.HeroClass, w.Name)
		}
		a.store.EquipWeapon(ctx, w)
	case "shield":
		if none {
			a.store.EquipShield(ctx, nil)
			break
		}
		sh, ok := a.catalog.Shield(id)
		if !ok {
			return errors.NotFoundf("unknown shield %q", id)
		}
		if !sh.AllowedFor(h.HeroClass) {
			return errors.FailedPreconditionf("a %s cannot use the %s", h.HeroClass, sh.Name)
		}
		a.store.EquipShield(ctx, sh)
		if a.store.CurrentHero().Equipment.Shield != sh {
			return errors.FailedPreconditionf("cannot carry the %s with a two-handed weapon", sh.Name)
		}
	case "helmet":
		if none {
			a.store.EquipHelmet(ctx, nil)
			break
		}
		hm, ok := a.catalog.Helmet(id)
		if !ok {
			return errors.NotFoundf("unknown helmet %q", id)
		}
		if !hm.AllowedFor(h.HeroClass) {
			return errors.FailedPreconditionf("a %s cannot use the %s", h.HeroClass, hm.Name)
		}
		a.store.EquipHelmet(ctx, hm)
	case "armor":
		if none {
			a.store.EquipArmor(ctx, nil)
			break
		}
		ar, ok := a.catalog.Armor(id)
		if !ok {
			return errors.NotFoundf("unknown armor %q", id)
		}
		if !ar.AllowedFor(h.HeroClass) {
			return errors.FailedPreconditionf("a %s cannot use the %s", h.HeroClass, ar.Name)
		}
		a.store.EquipArmor(ctx, ar)
	default:
		return errors.InvalidArgumentf("unknown slot %q: use weapon, shield, helmet or armor", slot)
	}

	a.out.equipment(a.store.CurrentHero().Equipment)
	return nil
}

func runSpell(ctx context.Context, a *app, args []string) error {
	h, err := a.currentHero()
	if err != nil {
		return err
	}
	if len(h.Spells) == 0 {
		return errors.FailedPreconditionf("%s has no spells", h.Name)
	}

	id := strings.ToLower(args[0])
	if id == "reset" {
		a.store.ResetAllSpells(ctx)
		a.out.successf("All spells ready")
		return nil
	}

	if h.FindSpell(id) < 0 {
		return errors.NotFoundf("%s does not know spell %q", h.Name, id)
	}
	a.store.ToggleSpellUsed(ctx, id)

	spell := a.store.CurrentHero().Spells[h.FindSpell(id)]
	state := "ready"
	if spell.Used {
		state = "used"
	}
	a.out.successf("%s: %s", spell.Name, state)
	return nil
}

func runItem(ctx context.Context, a *app, args []string) error {
	h, err := a.currentHero()
	if err != nil {
		return err
	}
	verb, id := strings.ToLower(args[0]), strings.ToLower(args[1])

	quantity := 1
	if len(args) == 3 {
		quantity, err = strconv.Atoi(args[2])
		if err != nil {
			return errors.InvalidArgumentf("quantity %q is not a number", args[2])
		}
	} else if verb == "set" {
		return errors.InvalidArgument("item set needs a quantity")
	}

	switch verb {
	case "add":
		if quantity <= 0 {
			return errors.InvalidArgument("quantity must be at least 1")
		}
		item, ok := a.catalog.NewItem(id, quantity)
		if !ok {
			return errors.NotFoundf("unknown item %q", id)
		}
		a.store.AddItem(ctx, item)
	case "remove":
		if h.FindItem(id) < 0 {
			return errors.NotFoundf("%s carries no %q", h.Name, id)
		}
		a.store.RemoveItem(ctx, id)
	case "set":
		if h.FindItem(id) < 0 {
			return errors.NotFoundf("%s carries no %q", h.Name, id)
		}
		a.store.UpdateItemQuantity(ctx, id, quantity)
	case "use":
		if h.FindItem(id) < 0 {
			return errors.NotFoundf("%s carries no %q", h.Name, id)
		}
		a.store.UseItem(ctx, id)
	default:
		return errors.InvalidArgumentf("unknown item action %q: use add, remove, set or use", verb)
	}

	a.out.inventory(a.store.CurrentHero().Inventory)
	return nil
}

func runQuest(ctx context.Context, a *app, args []string) error {
	if _, err := a.currentHero(); err != nil {
		return err
	}
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.InvalidArgumentf("quest %q is not a number", args[0])
	}
	quest, ok := a.catalog.Quest(number)
	if !ok {
		return errors.NotFoundf("no quest %d", number)
	}

	a.store.ToggleQuestCompleted(ctx, number)

	if a.store.CurrentHero().HasCompletedQuest(number) {
		a.out.successf("Quest %d %s: completed", quest.ID, quest.Name)
	} else {
		a.out.successf("Quest %d %s: not completed", quest.ID, quest.Name)
	}
	return nil
}

func runUndo(ctx context.Context, a *app, _ []string) error {
	label := a.store.UndoLabel()
	if !a.store.Undo(ctx) {
		a.out.linef("Nothing to undo")
		return nil
	}
	a.out.successf("Undid %s", label)
	return nil
}

func runRedo(ctx context.Context, a *app, _ []string) error {
	label := a.store.RedoLabel()
	if !a.store.Redo(ctx) {
		a.out.linef("Nothing to redo")
		return nil
	}
	a.out.successf("Redid %s", label)
	return nil
}

func runHistory(_ context.Context, a *app, _ []string) error {
	a.out.history(a.store.History())
	return nil
}

// parseAmount reads "5" as an absolute value and "+5" or "-5" as a delta
func parseAmount(arg string) (value int, relative bool, err error) {
	relative = strings.HasPrefix(arg, "+") || strings.HasPrefix(arg, "-")
	value, err = strconv.Atoi(arg)
	if err != nil {
		return 0, false, errors.InvalidArgumentf("%q is not a number", arg)
	}
	return value, relative, nil
}

func parseClass(arg string) (entities.HeroClassName, error) {
	for _, class := range entities.AllClasses {
		if strings.EqualFold(string(class), arg) {
			return class, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown class %q: choose Barbarian, Dwarf, Elf or Wizard", arg)
}

func parseSchools(args []string) ([]entities.SpellSchool, error) {
	schools := make([]entities.SpellSchool, 0, len(args))
	for _, arg := range args {
		idx := slices.IndexFunc(entities.AllSpellSchools, func(s entities.SpellSchool) bool {
			return strings.EqualFold(string(s), arg)
		})
		if idx < 0 {
			return nil, errors.InvalidArgumentf("unknown spell school %q: choose Air, Earth, Fire or Water", arg)
		}
		schools = append(schools, entities.AllSpellSchools[idx])
	}
	return schools, nil
}

// resolveHero matches arg against hero ids, then 1-based list positions,
// then names ignoring case
func resolveHero(heroes []*entities.Hero, arg string) (string, error) {
	for _, h := range heroes {
		if h.ID == arg {
			return h.ID, nil
		}
	}
	if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= len(heroes) {
		return heroes[n-1].ID, nil
	}

	var matches []string
	for _, h := range heroes {
		if strings.EqualFold(h.Name, arg) {
			matches = append(matches, h.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", errors.NotFoundf("no hero %q", arg)
	case 1:
		return matches[0], nil
	default:
		return "", errors.InvalidArgumentf("%d heroes are named %q: use the id or list number", len(matches), arg)
	}
}
