package testutil

// StubMember is a core.Member double with controllable presence and
// permission state.
type StubMember struct {
	id     string
	online bool
	perms  map[string]bool
}

// ID implements core.Member.
func (m *StubMember) ID() string { return m.id }

// Online implements core.Member.
func (m *StubMember) Online() bool { return m.online }

// HasPermission implements core.Member.
func (m *StubMember) HasPermission(node string) bool { return m.perms[node] }

// SetOnline flips the presence state between cycles.
func (m *StubMember) SetOnline(online bool) { m.online = online }

// MemberBuilder fluently constructs StubMembers. Defaults produce an online
// member without permissions.
type MemberBuilder struct {
	m StubMember
}

// NewMemberBuilder creates a builder for a member with the given identity.
func NewMemberBuilder(id string) *MemberBuilder {
	return &MemberBuilder{m: StubMember{id: id, online: true, perms: map[string]bool{}}}
}

// Offline marks the member unreachable (chainable).
func (b *MemberBuilder) Offline() *MemberBuilder { b.m.online = false; return b }

// Grant adds a permission node (chainable).
func (b *MemberBuilder) Grant(node string) *MemberBuilder { b.m.perms[node] = true; return b }

// Build returns the configured stub.
func (b *MemberBuilder) Build() *StubMember {
	cp := b.m
	cp.perms = map[string]bool{}
	for k, v := range b.m.perms {
		cp.perms[k] = v
	}
	return &cp
}
