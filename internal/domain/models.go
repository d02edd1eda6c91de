package domain

type CreatureSummary struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type CreatureDetails struct {
	Name       string   `json:"name"`
	Moves      []string `json:"moves"`
	Types      []string `json:"types"`
	Evolutions []string `json:"evolutions"` // root first
}

// EvolutionNode is one species in an evolution chain. Next lists the
// possible evolutions in upstream order.
type EvolutionNode struct {
	SpeciesName string
	Next        []EvolutionNode
}
