package core

// Member is a reference to a recipient identity together with its presence
// and permission capabilities. The host application owns the recipient
// lifecycle; the orchestrator only holds references and re-evaluates
// reachability on every audience resolution.
type Member interface {
	// ID returns the stable identity used for deduplication on insertion.
	ID() string

	// Online reports whether the member is currently reachable.
	Online() bool

	// HasPermission reports whether the member holds the given permission
	// node. Only consulted when the orchestrator has a required permission
	// configured.
	HasPermission(node string) bool
}

// FilterAudience returns the members that are currently online and, when a
// permission node is configured (non-empty), hold that permission. The result
// is a fresh snapshot; presence and permission state may change between
// calls.
func FilterAudience(members []Member, permission string) []Member {
	out := make([]Member, 0, len(members))
	for _, m := range members {
		if !m.Online() {
			continue
		}
		if permission != "" && !m.HasPermission(permission) {
			continue
		}
		out = append(out, m)
	}
	return out
}
