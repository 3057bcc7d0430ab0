package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/heroquest-tracker/internal/catalog"
	"github.com/KirkDiggler/heroquest-tracker/internal/engine"
	"github.com/KirkDiggler/heroquest-tracker/internal/entities"
	"github.com/KirkDiggler/heroquest-tracker/internal/errors"
	"github.com/KirkDiggler/heroquest-tracker/internal/pkg/history"
)

const emptySlot = "-"

// printer renders store state for a terminal. Styles are resolved against
// out, so output to a file or buffer carries no escape codes.
type printer struct {
	out     io.Writer
	title   lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
}

func newPrinter(out io.Writer) *printer {
	r := lipgloss.NewRenderer(out)
	return &printer{
		out:     out,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		label:   r.NewStyle().Bold(true),
		muted:   r.NewStyle().Faint(true),
		success: r.NewStyle().Foreground(lipgloss.Color("42")),
		header:  r.NewStyle().Bold(true).Underline(true),
		cell:    r.NewStyle(),
	}
}

func (p *printer) linef(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *printer) successf(format string, args ...any) {
	fmt.Fprintln(p.out, p.success.Render(fmt.Sprintf(format, args...)))
}

// table prints rows in aligned columns, with an underlined header row when
// headers is not empty
func (p *printer) table(headers []string, rows [][]string) {
	columns := len(headers)
	for _, row := range rows {
		columns = max(columns, len(row))
	}
	widths := make([]int, columns)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	render := func(style lipgloss.Style, row []string) {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i == len(row)-1 {
				cells[i] = style.Render(cell)
				continue
			}
			cells[i] = style.Width(widths[i] + 2).Render(cell)
		}
		fmt.Fprintln(p.out, strings.TrimRight(strings.Join(cells, ""), " "))
	}

	if len(headers) > 0 {
		render(p.header, headers)
	}
	for _, row := range rows {
		render(p.cell, row)
	}
}

func (p *printer) heroList(heroes []*entities.Hero, activeID string, classes entities.ClassTable) {
	if len(heroes) == 0 {
		p.linef("No heroes yet. Create one with: create <name> <class>")
		return
	}

	rows := make([][]string, len(heroes))
	for i, h := range heroes {
		marker := ""
		if h.ID == activeID {
			marker = "*"
		}
		class := classes[h.HeroClass]
		rows[i] = []string{
			marker,
			strconv.Itoa(i + 1),
			h.Name,
			string(h.HeroClass),
			fmt.Sprintf("%d/%d", h.CurrentBodyPoints, class.MaxBodyPoints),
			fmt.Sprintf("%d/%d", h.CurrentMindPoints, class.MaxMindPoints),
			strconv.Itoa(h.Gold),
			h.ID,
		}
	}
	p.table([]string{"", "#", "Name", "Class", "Body", "Mind", "Gold", "ID"}, rows)
}

func (p *printer) heroSheet(h *entities.Hero, stats *engine.ComputedStats, cat *catalog.Catalog) {
	fmt.Fprintln(p.out, p.title.Render(fmt.Sprintf("%s the %s", h.Name, h.HeroClass)))
	fmt.Fprintln(p.out, p.muted.Render(h.ID))

	p.table(nil, [][]string{
		{p.label.Render("Body"), fmt.Sprintf("%d/%d", h.CurrentBodyPoints, stats.MaxBodyPoints)},
		{p.label.Render("Mind"), fmt.Sprintf("%d/%d", h.CurrentMindPoints, stats.MaxMindPoints)},
		{p.label.Render("Gold"), strconv.Itoa(h.Gold)},
		{p.label.Render("Attack"), fmt.Sprintf("%d  %s", stats.TotalAttack, p.muted.Render(stats.AttackBreakdown))},
		{p.label.Render("Defend"), fmt.Sprintf("%d  %s", stats.TotalDefend, p.muted.Render(stats.DefendBreakdown))},
		{p.label.Render("Move"), fmt.Sprintf("%d", stats.TotalMove)},
	})

	var traits []string
	if stats.TwoHanded {
		traits = append(traits, "two-handed")
	}
	if stats.DiagonalAttack {
		traits = append(traits, "diagonal attack")
	}
	if stats.Ranged {
		traits = append(traits, "ranged")
	}
	if len(traits) > 0 {
		p.linef("Weapon: %s", strings.Join(traits, ", "))
	}

	p.equipment(h.Equipment)

	if stats.CanCastSpells {
		p.spells(h.Spells)
	}
	p.inventory(h.Inventory)
	p.quests(h.QuestsCompleted, cat)
}

func (p *printer) equipment(eq entities.Equipment) {
	slot := func(name string, ok bool) string {
		if !ok {
			return emptySlot
		}
		return name
	}

	fmt.Fprintln(p.out, p.label.Render("Equipment"))
	rows := [][]string{
		{"  Weapon", slot(pieceName(eq.Weapon, func(w *entities.Weapon) string { return w.Name }))},
		{"  Shield", slot(pieceName(eq.Shield, func(s *entities.Shield) string { return s.Name }))},
		{"  Helmet", slot(pieceName(eq.Helmet, func(h *entities.Helmet) string { return h.Name }))},
		{"  Armor", slot(pieceName(eq.Armor, func(a *entities.Armor) string { return a.Name }))},
	}
	p.table(nil, rows)
}

func pieceName[T any](piece *T, name func(*T) string) (string, bool) {
	if piece == nil {
		return "", false
	}
	return name(piece), true
}

func (p *printer) spells(spells []entities.Spell) {
	fmt.Fprintln(p.out, p.label.Render("Spells"))
	rows := make([][]string, len(spells))
	for i, s := range spells {
		state := "ready"
		if s.Used {
			state = p.muted.Render("used")
		}
		rows[i] = []string{"  " + s.ID, s.Name, string(s.School), state}
	}
	p.table(nil, rows)
}

func (p *printer) inventory(items []entities.Item) {
	fmt.Fprintln(p.out, p.label.Render("Inventory"))
	if len(items) == 0 {
		p.linef("  %s", emptySlot)
		return
	}
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = []string{"  " + item.ID, item.Name, fmt.Sprintf("x%d", item.Quantity)}
	}
	p.table(nil, rows)
}

func (p *printer) quests(completed []int, cat *catalog.Catalog) {
	fmt.Fprintln(p.out, p.label.Render(fmt.Sprintf("Quests (%d/%d)", len(completed), len(cat.Quests()))))
	if len(completed) == 0 {
		p.linef("  %s", emptySlot)
		return
	}
	rows := make([][]string, 0, len(completed))
	for _, id := range completed {
		quest, _ := cat.Quest(id)
		rows = append(rows, []string{"  " + strconv.Itoa(id), quest.Name})
	}
	p.table(nil, rows)
}

func (p *printer) history(marks []history.Mark) {
	if len(marks) == 0 {
		p.linef("No changes yet")
		return
	}
	rows := make([][]string, len(marks))
	for i, m := range marks {
		state := ""
		if m.Undone {
			state = p.muted.Render("undone")
		}
		rows[i] = []string{strconv.Itoa(i + 1), m.Timestamp.Format("15:04:05"), m.Label, state}
	}
	p.table([]string{"#", "Time", "Change", ""}, rows)
}

func (p *printer) catalog(cat *catalog.Catalog, kind string) error {
	switch kind {
	case "classes":
		var rows [][]string
		for _, name := range entities.AllClasses {
			c, _ := cat.Class(name)
			rows = append(rows, []string{
				string(c.Name),
				strconv.Itoa(c.BaseAttack), strconv.Itoa(c.BaseDefend), strconv.Itoa(c.BaseMove),
				strconv.Itoa(c.MaxBodyPoints), strconv.Itoa(c.MaxMindPoints),
				strconv.Itoa(c.SpellSchools),
				pieceNameOr(cat.StartingWeapon(name)),
			})
		}
		p.table([]string{"Class", "Attack", "Defend", "Move", "Body", "Mind", "Schools", "Starts with"}, rows)
	case "weapons":
		var rows [][]string
		for _, w := range cat.Weapons() {
			var flags []string
			if w.TwoHanded {
				flags = append(flags, "two-handed")
			}
			if w.DiagonalAttack {
				flags = append(flags, "diagonal")
			}
			if w.Ranged {
				flags = append(flags, "ranged")
			}
			if w.Throwable {
				flags = append(flags, "throwable")
			}
			if w.IsArtifact {
				flags = append(flags, "artifact")
			}
			rows = append(rows, []string{
				w.ID, w.Name, strconv.Itoa(w.AttackDice), strconv.Itoa(w.GoldCost),
				restricted(w.RestrictedClasses), strings.Join(flags, ", "),
			})
		}
		p.table([]string{"ID", "Name", "Attack", "Cost", "Not for", "Notes"}, rows)
	case "shields":
		var rows [][]string
		for _, s := range cat.Shields() {
			rows = append(rows, []string{s.ID, s.Name, strconv.Itoa(s.DefendDice), strconv.Itoa(s.GoldCost), restricted(s.RestrictedClasses)})
		}
		p.table([]string{"ID", "Name", "Defend", "Cost", "Not for"}, rows)
	case "helmets":
		var rows [][]string
		for _, h := range cat.Helmets() {
			rows = append(rows, []string{h.ID, h.Name, strconv.Itoa(h.DefendDice), strconv.Itoa(h.GoldCost), restricted(h.RestrictedClasses)})
		}
		p.table([]string{"ID", "Name", "Defend", "Cost", "Not for"}, rows)
	case "armor":
		var rows [][]string
		for _, a := range cat.ArmorPieces() {
			note := ""
			if a.MovementPenalty {
				note = "move 1"
			}
			rows = append(rows, []string{a.ID, a.Name, strconv.Itoa(a.DefendDice), strconv.Itoa(a.GoldCost), restricted(a.RestrictedClasses), note})
		}
		p.table([]string{"ID", "Name", "Defend", "Cost", "Not for", "Notes"}, rows)
	case "spells":
		var rows [][]string
		for _, school := range entities.AllSpellSchools {
			for _, s := range cat.SpellsForSchool(school) {
				rows = append(rows, []string{s.ID, s.Name, string(s.School)})
			}
		}
		p.table([]string{"ID", "Name", "School"}, rows)
	case "items":
		var rows [][]string
		for _, i := range cat.Items() {
			rows = append(rows, []string{i.ID, i.Name, string(i.Category), strconv.Itoa(i.GoldCost)})
		}
		p.table([]string{"ID", "Name", "Category", "Cost"}, rows)
	case "quests":
		var rows [][]string
		for _, q := range cat.Quests() {
			rows = append(rows, []string{strconv.Itoa(q.ID), q.Name, q.WanderingMonster, q.Artifact})
		}
		p.table([]string{"#", "Name", "Wandering monster", "Artifact"}, rows)
	default:
		return errors.InvalidArgumentf("unknown catalog %q: use classes, weapons, shields, helmets, armor, spells, items or quests", kind)
	}
	return nil
}

func pieceNameOr(w *entities.Weapon) string {
	if w == nil {
		return emptySlot
	}
	return w.Name
}

func restricted(classes []entities.HeroClassName) string {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
