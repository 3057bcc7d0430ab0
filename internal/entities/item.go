package entities

// ItemCategory groups inventory items
type ItemCategory string

// Item categories
const (
	CategoryPotion   ItemCategory = "potion"
	CategoryTool     ItemCategory = "tool"
	CategoryArtifact ItemCategory = "artifact"
	CategoryMisc     ItemCategory = "misc"
)

// Item is an inventory entry. Quantity stays above zero while the entry exists.
type Item struct {
	ID          string       `yaml:"id" json:"id"`
	Name        string       `yaml:"name" json:"name"`
	Category    ItemCategory `yaml:"category" json:"category"`
	Description string       `yaml:"description" json:"description"`
	GoldCost    int          `yaml:"goldCost" json:"goldCost"`
	Quantity    int          `yaml:"-" json:"quantity"`
}
