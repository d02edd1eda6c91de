package state

import (
	"pokedex/internal/constants"
	"pokedex/internal/domain"
	"pokedex/internal/service"
)

// State is replaced wholesale on every transition; the functions below
// never mutate their argument.
type State struct {
	List      []domain.CreatureSummary
	Query     string
	Details   *domain.CreatureDetails
	IsLoading bool
}

type View struct {
	Query     string                   `json:"query"`
	Results   []domain.CreatureSummary `json:"results"`
	IsLoading bool                     `json:"isLoading"`
	Details   *domain.CreatureDetails  `json:"details,omitempty"`
	Message   string                   `json:"message,omitempty"`
}

func Initial() State {
	return State{List: []domain.CreatureSummary{}}
}

func BeginLoad(s State) State {
	s.IsLoading = true
	return s
}

func FinishLoad(s State, list []domain.CreatureSummary) State {
	if list == nil {
		list = []domain.CreatureSummary{}
	}
	s.List = list
	s.IsLoading = false
	return s
}

// AbortLoad clears the loading flag and empties the list, so a failed
// reload never leaves an earlier catalog on screen.
func AbortLoad(s State) State {
	s.List = []domain.CreatureSummary{}
	s.IsLoading = false
	return s
}

func WithQuery(s State, q string) State {
	s.Query = q
	return s
}

func ClearDetails(s State) State {
	s.Details = nil
	return s
}

func WithDetails(s State, d *domain.CreatureDetails) State {
	s.Details = d
	return s
}

func Render(s State) View {
	results := service.Filter(s.List, s.Query)
	if results == nil {
		results = []domain.CreatureSummary{}
	}

	v := View{
		Query:     s.Query,
		Results:   results,
		IsLoading: s.IsLoading,
		Details:   s.Details,
	}
	if len(results) == 0 {
		if s.IsLoading {
			v.Message = constants.LoadingMessage
		} else {
			v.Message = constants.NoResultsMessage
		}
	}
	return v
}
