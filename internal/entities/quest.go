package entities

// Quest is one of the numbered quests of the quest book
type Quest struct {
	ID               int    `yaml:"id" json:"id"`
	Name             string `yaml:"name" json:"name"`
	WanderingMonster string `yaml:"wanderingMonster" json:"wanderingMonster"`
	Description      string `yaml:"description" json:"description"`
	Artifact         string `yaml:"artifact,omitempty" json:"artifact,omitempty"`
	Notes            string `yaml:"notes,omitempty" json:"notes,omitempty"`
}
