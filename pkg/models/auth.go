package models

// Auth scopes. Admin implies all other scopes.
const (
	ScopeRead    = "read"
	ScopeWrite   = "write"
	ScopeExecute = "execute"
	ScopeAdmin   = "admin"
)

// Principal is the resolved identity of an authenticated caller:
// a project plus the scopes granted on it. Resolution itself is the
// auth collaborator's job; the engine only reads this.
type Principal struct {
	ProjectID string   `json:"project_id"`
	Scopes    []string `json:"scopes"`
}

// HasScope reports whether the principal carries the given scope,
// directly or via admin.
func (p *Principal) HasScope(scope string) bool {
	for _, s := range p.Scopes {
		if s == scope || s == ScopeAdmin {
			return true
		}
	}
	return false
}
