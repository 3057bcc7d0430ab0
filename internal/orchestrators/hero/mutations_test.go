package hero_test

import (
	"math"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/KirkDiggler/heroquest-tracker/internal/catalog"
	"github.com/KirkDiggler/heroquest-tracker/internal/entities"
	"github.com/KirkDiggler/heroquest-tracker/internal/orchestrators/hero"
)

func (s *OrchestratorTestSuite) weapon(id string) *entities.Weapon {
	w, ok := s.catalog.Weapon(id)
	s.Require().True(ok, id)
	return w
}

func (s *OrchestratorTestSuite) shield(id string) *entities.Shield {
	sh, ok := s.catalog.Shield(id)
	s.Require().True(ok, id)
	return sh
}

func (s *OrchestratorTestSuite) item(id string, quantity int) entities.Item {
	i, ok := s.catalog.NewItem(id, quantity)
	s.Require().True(ok, id)
	return i
}

func (s *OrchestratorTestSuite) TestBodyPointClampIsTotal() {
	s.createHero("Thorin", entities.ClassBarbarian)
	deltas := []int{-1, 1, -9, 9, -1000, 1000, math.MinInt32, math.MaxInt32, 0, -3, 2}

	for _, delta := range deltas {
		s.orchestrator.AdjustBodyPoints(s.ctx, delta)
		points := s.orchestrator.CurrentHero().CurrentBodyPoints
		s.Assert().GreaterOrEqual(points, 0, "delta %d", delta)
		s.Assert().LessOrEqual(points, 8, "delta %d", delta)
	}

	s.orchestrator.SetBodyPoints(s.ctx, 100)
	s.Assert().Equal(8, s.orchestrator.CurrentHero().CurrentBodyPoints)
	s.orchestrator.SetBodyPoints(s.ctx, -3)
	s.Assert().Equal(0, s.orchestrator.CurrentHero().CurrentBodyPoints)
	s.orchestrator.AdjustBodyPoints(s.ctx, 5)
	s.Assert().Equal(5, s.orchestrator.CurrentHero().CurrentBodyPoints)
	s.Assert().Equal(hero.LabelSetBodyPoints, s.orchestrator.UndoLabel())
}

func (s *OrchestratorTestSuite) TestMindPointClampIsTotal() {
	s.createHero("Zoltar", entities.ClassWizard,
		entities.SchoolAir, entities.SchoolFire, entities.SchoolWater)
	deltas := []int{-2, 3, -100, 100, math.MinInt32, math.MaxInt32, -6, 6}

	for _, delta := range deltas {
		s.orchestrator.AdjustMindPoints(s.ctx, delta)
		points := s.orchestrator.CurrentHero().CurrentMindPoints
		s.Assert().GreaterOrEqual(points, 0, "delta %d", delta)
		s.Assert().LessOrEqual(points, 6, "delta %d", delta)
	}

	s.orchestrator.SetMindPoints(s.ctx, 7)
	s.Assert().Equal(6, s.orchestrator.CurrentHero().CurrentMindPoints)
	s.orchestrator.AdjustMindPoints(s.ctx, -4)
	s.Assert().Equal(2, s.orchestrator.CurrentHero().CurrentMindPoints)
	s.Assert().Equal(hero.LabelSetMindPoints, s.orchestrator.UndoLabel())
}

func (s *OrchestratorTestSuite) TestGoldClampBreaksInverseAtZero() {
	s.createHero("Thorin", entities.ClassBarbarian)

	s.orchestrator.AdjustGold(s.ctx, -5)
	s.Assert().Equal(0, s.orchestrator.CurrentHero().Gold)
	s.orchestrator.AdjustGold(s.ctx, 5)
	s.Assert().Equal(5, s.orchestrator.CurrentHero().Gold)

	s.orchestrator.SetGold(s.ctx, 20)
	s.orchestrator.AdjustGold(s.ctx, 7)
	s.orchestrator.AdjustGold(s.ctx, -7)
	s.Assert().Equal(20, s.orchestrator.CurrentHero().Gold)

	s.orchestrator.SetGold(s.ctx, -1)
	s.Assert().Equal(0, s.orchestrator.CurrentHero().Gold)
}

func (s *OrchestratorTestSuite) TestUpdateHeroName() {
	s.createHero("Thorin", entities.ClassBarbarian)

	s.orchestrator.UpdateHeroName(s.ctx, " Grimbold ")
	s.Assert().Equal("Grimbold", s.orchestrator.CurrentHero().Name)
	s.Assert().Equal(hero.LabelUpdateName, s.orchestrator.UndoLabel())

	s.orchestrator.UpdateHeroName(s.ctx, "  ")
	s.Assert().Equal("Grimbold", s.orchestrator.CurrentHero().Name)
	s.Assert().Len(s.orchestrator.History(), 1)
}

func (s *OrchestratorTestSuite) TestMutationBumpsUpdatedAt() {
	created := s.createHero("Thorin", entities.ClassBarbarian)

	s.clock.Advance(time.Minute)
	s.orchestrator.SetGold(s.ctx, 10)

	current := s.orchestrator.CurrentHero()
	s.Assert().Equal(created.CreatedAt, current.CreatedAt)
	s.Assert().Equal(created.UpdatedAt+time.Minute.Milliseconds(), current.UpdatedAt)
}

func (s *OrchestratorTestSuite) TestMutationsWithoutActiveHeroDoNothing() {
	s.orchestrator.SetBodyPoints(s.ctx, 3)
	s.orchestrator.AdjustBodyPoints(s.ctx, -1)
	s.orchestrator.SetMindPoints(s.ctx, 3)
	s.orchestrator.AdjustMindPoints(s.ctx, 1)
	s.orchestrator.UpdateHeroName(s.ctx, "Nobody")
	s.orchestrator.EquipWeapon(s.ctx, s.weapon("broadsword"))
	s.orchestrator.EquipShield(s.ctx, s.shield("small-shield"))
	s.orchestrator.EquipHelmet(s.ctx, nil)
	s.orchestrator.EquipArmor(s.ctx, nil)
	s.orchestrator.ToggleSpellUsed(s.ctx, "genie")
	s.orchestrator.ResetAllSpells(s.ctx)
	s.orchestrator.SetGold(s.ctx, 10)
	s.orchestrator.AdjustGold(s.ctx, 10)
	s.orchestrator.AddItem(s.ctx, s.item("gem", 1))
	s.orchestrator.RemoveItem(s.ctx, "gem")
	s.orchestrator.UpdateItemQuantity(s.ctx, "gem", 3)
	s.orchestrator.UseItem(s.ctx, "gem")
	s.orchestrator.ToggleQuestCompleted(s.ctx, 1)

	s.Assert().False(s.orchestrator.Undo(s.ctx))
	s.Assert().False(s.orchestrator.Redo(s.ctx))
	s.Assert().False(s.orchestrator.CanUndo())
	s.Assert().Empty(s.persisted)
	s.Assert().Nil(s.orchestrator.CurrentHero())
}

func (s *OrchestratorTestSuite) TestTwoHandedWeaponClearsShield() {
	s.createHero("Thorin", entities.ClassBarbarian)
	s.orchestrator.EquipShield(s.ctx, s.shield("small-shield"))
	s.Require().NotNil(s.orchestrator.CurrentHero().Equipment.Shield)

	s.orchestrator.EquipWeapon(s.ctx, s.weapon("battle-axe"))

	current := s.orchestrator.CurrentHero()
	s.Assert().Nil(current.Equipment.Shield)
	s.Assert().Equal("battle-axe", current.Equipment.Weapon.ID)
	// one entry covers both slots
	s.Assert().Len(s.orchestrator.History(), 2)

	s.orchestrator.Undo(s.ctx)
	current = s.orchestrator.CurrentHero()
	s.Assert().Equal("broadsword", current.Equipment.Weapon.ID)
	s.Require().NotNil(current.Equipment.Shield)
	s.Assert().Equal("small-shield", current.Equipment.Shield.ID)
}

func (s *OrchestratorTestSuite) TestOneHandedWeaponKeepsShield() {
	s.createHero("Thorin", entities.ClassBarbarian)
	s.orchestrator.EquipShield(s.ctx, s.shield("large-shield"))

	s.orchestrator.EquipWeapon(s.ctx, s.weapon("longsword"))

	s.Require().NotNil(s.orchestrator.CurrentHero().Equipment.Shield)
	s.Assert().Equal("large-shield", s.orchestrator.CurrentHero().Equipment.Shield.ID)
}

func (s *OrchestratorTestSuite) TestShieldRejectedWithTwoHandedWeapon() {
	s.createHero("Thorin", entities.ClassBarbarian)
	s.orchestrator.EquipWeapon(s.ctx, s.weapon("two-handed-sword"))
	historyLen := len(s.orchestrator.History())
	persisted := len(s.persisted)
	before := s.orchestrator.CurrentHero()

	s.orchestrator.EquipShield(s.ctx, s.shield("small-shield"))

	s.Assert().Nil(s.orchestrator.CurrentHero().Equipment.Shield)
	s.Assert().Equal(before, s.orchestrator.CurrentHero())
	s.Assert().Len(s.orchestrator.History(), historyLen)
	s.Assert().Len(s.persisted, persisted)

	// removing the shield slot is still allowed
	s.orchestrator.EquipShield(s.ctx, nil)
	s.Assert().Len(s.orchestrator.History(), historyLen+1)
	s.Assert().Equal(hero.LabelEquipShield, s.orchestrator.UndoLabel())
}

func (s *OrchestratorTestSuite) TestEquipNoneSentinelUnequips() {
	s.createHero("Thorin", entities.ClassBarbarian)
	s.orchestrator.EquipShield(s.ctx, s.shield("small-shield"))

	s.orchestrator.EquipWeapon(s.ctx, catalog.NoWeapon)
	s.orchestrator.EquipShield(s.ctx, catalog.NoShield)
	s.orchestrator.EquipHelmet(s.ctx, catalog.NoHelmet)
	s.orchestrator.EquipArmor(s.ctx, catalog.NoArmor)

	equipment := s.orchestrator.CurrentHero().Equipment
	s.Assert().Nil(equipment.Weapon)
	s.Assert().Nil(equipment.Shield)
	s.Assert().Nil(equipment.Helmet)
	s.Assert().Nil(equipment.Armor)
}

func (s *OrchestratorTestSuite) TestWizardWithoutWeaponIsUnarmed() {
	s.createHero("Zoltar", entities.ClassWizard,
		entities.SchoolAir, entities.SchoolFire, entities.SchoolWater)

	s.orchestrator.EquipWeapon(s.ctx, nil)

	stats := s.orchestrator.Stats()
	s.Require().NotNil(stats)
	s.Assert().Equal(1, stats.TotalAttack)
	s.Assert().Equal("1 (unarmed)", stats.AttackBreakdown)
	s.Assert().Equal(hero.LabelEquipWeapon, s.orchestrator.UndoLabel())
}

func (s *OrchestratorTestSuite) TestPlateMailLimitsMovement() {
	s.createHero("Thorin", entities.ClassBarbarian)
	s.Require().Equal(2, s.orchestrator.Stats().TotalMove)

	armor, ok := s.catalog.Armor("plate-mail")
	s.Require().True(ok)
	s.orchestrator.EquipArmor(s.ctx, armor)

	stats := s.orchestrator.Stats()
	s.Assert().Equal(1, stats.TotalMove)
	s.Assert().Equal(4, stats.TotalDefend)
	s.Assert().Equal("2 (base) + 2 (Plate Mail)", stats.DefendBreakdown)
	s.Assert().Equal(hero.LabelEquipArmor, s.orchestrator.UndoLabel())
}

func (s *OrchestratorTestSuite) TestEquipHelmet() {
	s.createHero("Thorin", entities.ClassBarbarian)
	helmet, ok := s.catalog.Helmet("helmet")
	s.Require().True(ok)

	s.orchestrator.EquipHelmet(s.ctx, helmet)

	s.Assert().Equal(helmet, s.orchestrator.CurrentHero().Equipment.Helmet)
	s.Assert().Equal(3, s.orchestrator.Stats().TotalDefend)
	s.Assert().Equal(hero.LabelEquipHelmet, s.orchestrator.UndoLabel())
}

func (s *OrchestratorTestSuite) TestSpells() {
	s.createHero("Zoltar", entities.ClassWizard,
		entities.SchoolAir, entities.SchoolFire, entities.SchoolWater)
	spells := s.orchestrator.CurrentHero().Spells
	first, second := spells[0].ID, spells[4].ID

	s.orchestrator.ToggleSpellUsed(s.ctx, first)
	s.orchestrator.ToggleSpellUsed(s.ctx, second)
	current := s.orchestrator.CurrentHero()
	s.Assert().True(current.Spells[0].Used)
	s.Assert().True(current.Spells[4].Used)
	s.Assert().Equal(hero.LabelToggleSpell, s.orchestrator.UndoLabel())

	s.orchestrator.ToggleSpellUsed(s.ctx, second)
	s.Assert().False(s.orchestrator.CurrentHero().Spells[4].Used)

	historyLen := len(s.orchestrator.History())
	s.orchestrator.ToggleSpellUsed(s.ctx, "not-a-spell")
	s.Assert().Len(s.orchestrator.History(), historyLen)

	s.orchestrator.ToggleSpellUsed(s.ctx, second)
	s.orchestrator.ResetAllSpells(s.ctx)
	for _, spell := range s.orchestrator.CurrentHero().Spells {
		s.Assert().False(spell.Used, spell.ID)
	}
	s.Assert().Equal(hero.LabelResetSpells, s.orchestrator.UndoLabel())

	// the whole reset is one step
	s.orchestrator.Undo(s.ctx)
	current = s.orchestrator.CurrentHero()
	s.Assert().True(current.Spells[0].Used)
	s.Assert().True(current.Spells[4].Used)
}

func (s *OrchestratorTestSuite) TestAddItemMergesByID() {
	s.createHero("Thorin", entities.ClassBarbarian)

	s.orchestrator.AddItem(s.ctx, s.item("gem", 1))
	s.orchestrator.AddItem(s.ctx, s.item("gem", 1))

	inventory := s.orchestrator.CurrentHero().Inventory
	s.Require().Len(inventory, 1)
	s.Assert().Equal("gem", inventory[0].ID)
	s.Assert().Equal(2, inventory[0].Quantity)
	s.Assert().Equal(hero.LabelAddItem, s.orchestrator.UndoLabel())

	s.orchestrator.AddItem(s.ctx, s.item("healing-potion", 3))
	inventory = s.orchestrator.CurrentHero().Inventory
	s.Require().Len(inventory, 2)
	s.Assert().Equal("healing-potion", inventory[1].ID)
	s.Assert().Equal(3, inventory[1].Quantity)
}

func (s *OrchestratorTestSuite) TestAddItemRejectsEmptyQuantity() {
	s.createHero("Thorin", entities.ClassBarbarian)

	s.orchestrator.AddItem(s.ctx, s.item("gem", 0))
	s.orchestrator.AddItem(s.ctx, s.item("gem", -2))

	s.Assert().Empty(s.orchestrator.CurrentHero().Inventory)
	s.Assert().False(s.orchestrator.CanUndo())
}

func (s *OrchestratorTestSuite) TestUpdateItemQuantityToZeroRemoves() {
	s.createHero("Thorin", entities.ClassBarbarian)
	s.orchestrator.AddItem(s.ctx, s.item("gem", 1))
	s.orchestrator.AddItem(s.ctx, s.item("gem", 1))

	s.orchestrator.UpdateItemQuantity(s.ctx, "gem", 5)
	s.Assert().Equal(5, s.orchestrator.CurrentHero().Inventory[0].Quantity)
	s.Assert().Equal(hero.LabelUpdateItemQuantity, s.orchestrator.UndoLabel())

	s.orchestrator.UpdateItemQuantity(s.ctx, "gem", 0)
	s.Assert().Empty(s.orchestrator.CurrentHero().Inventory)
	s.Assert().Equal(hero.LabelRemoveItem, s.orchestrator.UndoLabel())
	s.Assert().Len(s.orchestrator.History(), 4)

	historyLen := len(s.orchestrator.History())
	s.orchestrator.UpdateItemQuantity(s.ctx, "gem", 2)
	s.orchestrator.UpdateItemQuantity(s.ctx, "gem", -1)
	s.Assert().Len(s.orchestrator.History(), historyLen)
}

func (s *OrchestratorTestSuite) TestRemoveItemIgnoresQuantity() {
	s.createHero("Thorin", entities.ClassBarbarian)
	s.orchestrator.AddItem(s.ctx, s.item("healing-potion", 4))
	s.orchestrator.AddItem(s.ctx, s.item("toolkit", 1))

	s.orchestrator.RemoveItem(s.ctx, "healing-potion")

	inventory := s.orchestrator.CurrentHero().Inventory
	s.Require().Len(inventory, 1)
	s.Assert().Equal("toolkit", inventory[0].ID)

	historyLen := len(s.orchestrator.History())
	s.orchestrator.RemoveItem(s.ctx, "healing-potion")
	s.Assert().Len(s.orchestrator.History(), historyLen)
}

func (s *OrchestratorTestSuite) TestUseItemConsumesOne() {
	s.createHero("Thorin", entities.ClassBarbarian)
	s.orchestrator.AddItem(s.ctx, s.item("healing-potion", 2))

	s.orchestrator.UseItem(s.ctx, "healing-potion")
	s.Assert().Equal(1, s.orchestrator.CurrentHero().Inventory[0].Quantity)
	s.Assert().Equal(hero.LabelUpdateItemQuantity, s.orchestrator.UndoLabel())

	s.orchestrator.UseItem(s.ctx, "healing-potion")
	s.Assert().Empty(s.orchestrator.CurrentHero().Inventory)
	s.Assert().Equal(hero.LabelRemoveItem, s.orchestrator.UndoLabel())

	historyLen := len(s.orchestrator.History())
	s.orchestrator.UseItem(s.ctx, "healing-potion")
	s.Assert().Len(s.orchestrator.History(), historyLen)
}

func (s *OrchestratorTestSuite) TestToggleQuestKeepsOrder() {
	s.createHero("Thorin", entities.ClassBarbarian)

	for _, id := range []int{5, 2, 9, 14, 1} {
		s.orchestrator.ToggleQuestCompleted(s.ctx, id)
	}
	s.Assert().Equal([]int{1, 2, 5, 9, 14}, s.orchestrator.CurrentHero().QuestsCompleted)
	s.Assert().Equal(hero.LabelToggleQuest, s.orchestrator.UndoLabel())

	s.orchestrator.ToggleQuestCompleted(s.ctx, 5)
	s.Assert().Equal([]int{1, 2, 9, 14}, s.orchestrator.CurrentHero().QuestsCompleted)
	s.Assert().True(s.orchestrator.CurrentHero().HasCompletedQuest(9))
	s.Assert().False(s.orchestrator.CurrentHero().HasCompletedQuest(5))

	historyLen := len(s.orchestrator.History())
	s.orchestrator.ToggleQuestCompleted(s.ctx, 0)
	s.orchestrator.ToggleQuestCompleted(s.ctx, 15)
	s.Assert().Len(s.orchestrator.History(), historyLen)
}

// applyMixedChanges performs one of every kind of change, advancing the
// clock so timestamps differ between steps
func (s *OrchestratorTestSuite) applyMixedChanges() int {
	steps := []func(){
		func() { s.orchestrator.AdjustBodyPoints(s.ctx, -3) },
		func() { s.orchestrator.AdjustMindPoints(s.ctx, -1) },
		func() { s.orchestrator.UpdateHeroName(s.ctx, "Thorin Ironfist") },
		func() { s.orchestrator.EquipShield(s.ctx, s.shield("small-shield")) },
		func() { s.orchestrator.EquipWeapon(s.ctx, s.weapon("battle-axe")) },
		func() { s.orchestrator.AdjustGold(s.ctx, 120) },
		func() { s.orchestrator.AddItem(s.ctx, s.item("healing-potion", 2)) },
		func() { s.orchestrator.UseItem(s.ctx, "healing-potion") },
		func() { s.orchestrator.ToggleQuestCompleted(s.ctx, 3) },
		func() { s.orchestrator.ToggleQuestCompleted(s.ctx, 1) },
		func() { s.orchestrator.UpdateItemQuantity(s.ctx, "healing-potion", 0) },
	}
	for _, step := range steps {
		s.clock.Advance(time.Second)
		step()
	}
	return len(steps)
}

func (s *OrchestratorTestSuite) TestUndoRoundTrip() {
	s.createHero("Thorin", entities.ClassBarbarian)
	s.orchestrator.SetGold(s.ctx, 10)
	before := s.orchestrator.CurrentHero()

	n := s.applyMixedChanges()
	s.Require().NotEqual(before, s.orchestrator.CurrentHero())

	for i := 0; i < n; i++ {
		s.Require().True(s.orchestrator.Undo(s.ctx), "undo %d", i)
	}

	if diff := cmp.Diff(before, s.orchestrator.CurrentHero()); diff != "" {
		s.Failf("state after undo differs", "(-want +got):\n%s", diff)
	}
	s.Assert().True(s.orchestrator.CanUndo())
	s.Assert().Equal(hero.LabelSetGold, s.orchestrator.UndoLabel())
}

func (s *OrchestratorTestSuite) TestUndoIsBoundedByHistorySize() {
	s.createHero("Thorin", entities.ClassBarbarian)

	for gold := 1; gold <= 60; gold++ {
		s.orchestrator.SetGold(s.ctx, gold)
	}
	s.Require().Len(s.orchestrator.History(), 50)

	undone := 0
	for s.orchestrator.Undo(s.ctx) {
		undone++
	}

	s.Assert().Equal(50, undone)
	s.Assert().Equal(10, s.orchestrator.CurrentHero().Gold)
}

func (s *OrchestratorTestSuite) TestUndoThenRedoRestoresExactly() {
	s.createHero("Thorin", entities.ClassBarbarian)
	n := s.applyMixedChanges()
	after := s.orchestrator.CurrentHero()

	for i := 0; i < n; i++ {
		s.Require().True(s.orchestrator.Undo(s.ctx))
	}
	for i := 0; i < n; i++ {
		s.Require().True(s.orchestrator.Redo(s.ctx), "redo %d", i)
	}

	if diff := cmp.Diff(after, s.orchestrator.CurrentHero()); diff != "" {
		s.Failf("state after redo differs", "(-want +got):\n%s", diff)
	}
	s.Assert().False(s.orchestrator.CanRedo())
}

func (s *OrchestratorTestSuite) TestRedoBoundaries() {
	s.createHero("Thorin", entities.ClassBarbarian)

	// empty history: cursor -1 with no entries
	s.Assert().False(s.orchestrator.CanRedo())
	s.Assert().False(s.orchestrator.Redo(s.ctx))
	s.Assert().Empty(s.orchestrator.RedoLabel())

	s.orchestrator.SetGold(s.ctx, 10)
	s.orchestrator.SetGold(s.ctx, 20)

	// cursor at the last entry
	s.Assert().False(s.orchestrator.Redo(s.ctx))
	s.Assert().Equal(20, s.orchestrator.CurrentHero().Gold)

	// cursor 0
	s.Require().True(s.orchestrator.Undo(s.ctx))
	s.Assert().Equal(10, s.orchestrator.CurrentHero().Gold)
	s.Assert().Equal(hero.LabelSetGold, s.orchestrator.RedoLabel())

	// cursor -1 with entries
	s.Require().True(s.orchestrator.Undo(s.ctx))
	s.Assert().Equal(0, s.orchestrator.CurrentHero().Gold)
	s.Assert().False(s.orchestrator.Undo(s.ctx))

	s.Require().True(s.orchestrator.Redo(s.ctx))
	s.Assert().Equal(10, s.orchestrator.CurrentHero().Gold)
	s.Require().True(s.orchestrator.Redo(s.ctx))
	s.Assert().Equal(20, s.orchestrator.CurrentHero().Gold)
	s.Assert().False(s.orchestrator.Redo(s.ctx))
}

func (s *OrchestratorTestSuite) TestNewChangeDiscardsRedo() {
	s.createHero("Thorin", entities.ClassBarbarian)
	s.orchestrator.SetGold(s.ctx, 10)
	s.orchestrator.SetGold(s.ctx, 20)
	s.orchestrator.SetGold(s.ctx, 30)

	s.orchestrator.Undo(s.ctx)
	s.orchestrator.Undo(s.ctx)
	s.Require().True(s.orchestrator.CanRedo())

	s.orchestrator.AdjustBodyPoints(s.ctx, -1)

	s.Assert().False(s.orchestrator.CanRedo())
	s.Assert().False(s.orchestrator.Redo(s.ctx))
	s.Assert().Equal(10, s.orchestrator.CurrentHero().Gold)
	s.Assert().Equal(7, s.orchestrator.CurrentHero().CurrentBodyPoints)

	marks := s.orchestrator.History()
	s.Require().Len(marks, 2)
	s.Assert().Equal(hero.LabelSetGold, marks[0].Label)
	s.Assert().Equal(hero.LabelSetBodyPoints, marks[1].Label)
}

func (s *OrchestratorTestSuite) TestUndoAndRedoAreNotRecorded() {
	s.createHero("Thorin", entities.ClassBarbarian)
	s.orchestrator.SetGold(s.ctx, 10)

	s.orchestrator.Undo(s.ctx)
	s.orchestrator.Redo(s.ctx)
	s.orchestrator.Undo(s.ctx)

	s.Assert().Len(s.orchestrator.History(), 1)
	s.Assert().True(s.orchestrator.History()[0].Undone)
}
