package model

// OrderedSet is a named, ordered, de-duplicated list of statement references
// used as a shared connection point between arguments. Identity is shared by
// reference: two arguments naming the same ordered set express "conclusion
// of A feeds premise of B" without duplicating the statements.
type OrderedSet struct {
	ID           string   `json:"id"`
	StatementIDs []string `json:"statement_ids"`
}

// NewOrderedSet creates an ordered set, dropping duplicate statement IDs
// while preserving first-occurrence order.
func NewOrderedSet(id string, statementIDs []string) *OrderedSet {
	seen := make(map[string]struct{}, len(statementIDs))
	deduped := make([]string, 0, len(statementIDs))
	for _, sid := range statementIDs {
		if _, ok := seen[sid]; ok {
			continue
		}
		seen[sid] = struct{}{}
		deduped = append(deduped, sid)
	}
	return &OrderedSet{ID: id, StatementIDs: deduped}
}
