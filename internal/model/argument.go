package model

// AtomicArgument is one reasoning step: premises derive conclusions. Both
// sides hold resolved statement IDs regardless of which authoring syntax
// produced the argument.
type AtomicArgument struct {
	ID            string   `json:"id"`
	PremiseIDs    []string `json:"premise_ids"`
	ConclusionIDs []string `json:"conclusion_ids"`
	SideLabel     string   `json:"side_label,omitempty"`
}

// NewAtomicArgument creates an argument. Empty premise and conclusion lists
// are valid together: that is a bootstrap placeholder, not an error.
func NewAtomicArgument(id string, premiseIDs, conclusionIDs []string) *AtomicArgument {
	return &AtomicArgument{
		ID:            id,
		PremiseIDs:    append([]string(nil), premiseIDs...),
		ConclusionIDs: append([]string(nil), conclusionIDs...),
	}
}

// IsBootstrap reports whether the argument is an empty placeholder
func (a *AtomicArgument) IsBootstrap() bool {
	return len(a.PremiseIDs) == 0 && len(a.ConclusionIDs) == 0
}
