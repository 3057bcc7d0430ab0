package hero

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/KirkDiggler/heroquest-tracker/internal/entities"
	"github.com/KirkDiggler/heroquest-tracker/internal/pkg/clock"
)

// mutate applies fn to a copy of the active hero. When fn reports a change
// the previous value is recorded under label and the copy replaces it.
func (o *orchestrator) mutate(ctx context.Context, label string, fn func(h *entities.Hero) bool) {
	idx := o.activeIndex()
	if idx < 0 {
		slog.DebugContext(ctx, "No active hero, ignoring change", "action", label)
		return
	}

	current := o.heroes[idx]
	next := current.Clone()
	if !fn(next) {
		slog.DebugContext(ctx, "Change not applied",
			"hero_id", current.ID,
			"action", label)
		return
	}

	o.history.Record(current, label)
	next.UpdatedAt = clock.UnixMilli(o.clock)
	o.heroes[idx] = next

	o.persist()
	o.publish(ctx, EventHeroMutated, next, label)
}

// active returns the installed active hero without copying, or nil
func (o *orchestrator) active() *entities.Hero {
	idx := o.activeIndex()
	if idx < 0 {
		return nil
	}
	return o.heroes[idx]
}

func (o *orchestrator) UpdateHeroName(ctx context.Context, name string) {
	name = strings.TrimSpace(name)
	o.mutate(ctx, LabelUpdateName, func(h *entities.Hero) bool {
		if name == "" {
			return false
		}
		h.Name = name
		return true
	})
}

// SetBodyPoints sets body points, clamped to [0, class maximum]
func (o *orchestrator) SetBodyPoints(ctx context.Context, points int) {
	o.mutate(ctx, LabelSetBodyPoints, func(h *entities.Hero) bool {
		h.CurrentBodyPoints = clamp(points, 0, o.classes[h.HeroClass].MaxBodyPoints)
		return true
	})
}

func (o *orchestrator) AdjustBodyPoints(ctx context.Context, delta int) {
	if h := o.active(); h != nil {
		o.SetBodyPoints(ctx, h.CurrentBodyPoints+delta)
	}
}

// SetMindPoints sets mind points, clamped to [0, class maximum]
func (o *orchestrator) SetMindPoints(ctx context.Context, points int) {
	o.mutate(ctx, LabelSetMindPoints, func(h *entities.Hero) bool {
		h.CurrentMindPoints = clamp(points, 0, o.classes[h.HeroClass].MaxMindPoints)
		return true
	})
}

func (o *orchestrator) AdjustMindPoints(ctx context.Context, delta int) {
	if h := o.active(); h != nil {
		o.SetMindPoints(ctx, h.CurrentMindPoints+delta)
	}
}

// EquipWeapon equips weapon, or unequips with nil. A two-handed weapon also
// removes the shield.
func (o *orchestrator) EquipWeapon(ctx context.Context, weapon *entities.Weapon) {
	if weapon != nil && weapon.ID == entities.NoneID {
		weapon = nil
	}
	o.mutate(ctx, LabelEquipWeapon, func(h *entities.Hero) bool {
		h.Equipment.Weapon = weapon
		if weapon != nil && weapon.TwoHanded {
			h.Equipment.Shield = nil
		}
		return true
	})
}

// EquipShield equips shield, or unequips with nil. A shield cannot be
// equipped alongside a two-handed weapon.
func (o *orchestrator) EquipShield(ctx context.Context, shield *entities.Shield) {
	if shield != nil && shield.ID == entities.NoneID {
		shield = nil
	}
	o.mutate(ctx, LabelEquipShield, func(h *entities.Hero) bool {
		if shield != nil && h.Equipment.Weapon != nil && h.Equipment.Weapon.TwoHanded {
			return false
		}
		h.Equipment.Shield = shield
		return true
	})
}

func (o *orchestrator) EquipHelmet(ctx context.Context, helmet *entities.Helmet) {
	if helmet != nil && helmet.ID == entities.NoneID {
		helmet = nil
	}
	o.mutate(ctx, LabelEquipHelmet, func(h *entities.Hero) bool {
		h.Equipment.Helmet = helmet
		return true
	})
}

func (o *orchestrator) EquipArmor(ctx context.Context, armor *entities.Armor) {
	if armor != nil && armor.ID == entities.NoneID {
		armor = nil
	}
	o.mutate(ctx, LabelEquipArmor, func(h *entities.Hero) bool {
		h.Equipment.Armor = armor
		return true
	})
}

func (o *orchestrator) ToggleSpellUsed(ctx context.Context, spellID string) {
	o.mutate(ctx, LabelToggleSpell, func(h *entities.Hero) bool {
		idx := h.FindSpell(spellID)
		if idx < 0 {
			return false
		}
		h.Spells[idx].Used = !h.Spells[idx].Used
		return true
	})
}

// ResetAllSpells marks every spell unused as a single change
func (o *orchestrator) ResetAllSpells(ctx context.Context) {
	o.mutate(ctx, LabelResetSpells, func(h *entities.Hero) bool {
		for i := range h.Spells {
			h.Spells[i].Used = false
		}
		return true
	})
}

// SetGold sets gold, never below zero
func (o *orchestrator) SetGold(ctx context.Context, gold int) {
	o.mutate(ctx, LabelSetGold, func(h *entities.Hero) bool {
		h.Gold = max(gold, 0)
		return true
	})
}

func (o *orchestrator) AdjustGold(ctx context.Context, delta int) {
	if h := o.active(); h != nil {
		o.SetGold(ctx, h.Gold+delta)
	}
}

// AddItem adds item to the inventory, merging quantities by id
func (o *orchestrator) AddItem(ctx context.Context, item entities.Item) {
	o.mutate(ctx, LabelAddItem, func(h *entities.Hero) bool {
		if item.ID == "" || item.Quantity <= 0 {
			return false
		}
		if idx := h.FindItem(item.ID); idx >= 0 {
			h.Inventory[idx].Quantity += item.Quantity
			return true
		}
		h.Inventory = append(h.Inventory, item)
		return true
	})
}

// RemoveItem drops the whole inventory entry regardless of quantity
func (o *orchestrator) RemoveItem(ctx context.Context, itemID string) {
	o.mutate(ctx, LabelRemoveItem, func(h *entities.Hero) bool {
		idx := h.FindItem(itemID)
		if idx < 0 {
			return false
		}
		h.Inventory = slices.Delete(h.Inventory, idx, idx+1)
		return true
	})
}

// UpdateItemQuantity sets the quantity of an inventory entry. Zero or less
// removes the entry, recorded as a removal.
func (o *orchestrator) UpdateItemQuantity(ctx context.Context, itemID string, quantity int) {
	if quantity <= 0 {
		o.RemoveItem(ctx, itemID)
		return
	}
	o.mutate(ctx, LabelUpdateItemQuantity, func(h *entities.Hero) bool {
		idx := h.FindItem(itemID)
		if idx < 0 {
			return false
		}
		h.Inventory[idx].Quantity = quantity
		return true
	})
}

// UseItem consumes one unit of an inventory entry
func (o *orchestrator) UseItem(ctx context.Context, itemID string) {
	h := o.active()
	if h == nil {
		return
	}
	idx := h.FindItem(itemID)
	if idx < 0 {
		return
	}
	o.UpdateItemQuantity(ctx, itemID, h.Inventory[idx].Quantity-1)
}

// ToggleQuestCompleted marks a catalog quest completed, or not completed
// when it already is. Completed ids stay sorted.
func (o *orchestrator) ToggleQuestCompleted(ctx context.Context, questID int) {
	if _, ok := o.catalog.Quest(questID); !ok {
		return
	}
	o.mutate(ctx, LabelToggleQuest, func(h *entities.Hero) bool {
		idx, found := slices.BinarySearch(h.QuestsCompleted, questID)
		if found {
			h.QuestsCompleted = slices.Delete(h.QuestsCompleted, idx, idx+1)
		} else {
			h.QuestsCompleted = slices.Insert(h.QuestsCompleted, idx, questID)
		}
		return true
	})
}

func clamp(value, lower, upper int) int {
	return min(max(value, lower), upper)
}
