package service

// IdentifierKind names one class of identifying value tracked for batch
// uniqueness.
type IdentifierKind string

const (
	KindPhoneNumber IdentifierKind = "phone_number"
	KindSocialID    IdentifierKind = "social_id"
	KindAccountID   IdentifierKind = "account_id"
)

// UniquenessRegistry records identifying values of rows accepted earlier in
// the same batch. A registry belongs to exactly one batch run; reusing it
// across runs would treat the earlier run's values as already seen.
type UniquenessRegistry struct {
	seen map[IdentifierKind]map[string]struct{}
}

func NewUniquenessRegistry() *UniquenessRegistry {
	return &UniquenessRegistry{
		seen: make(map[IdentifierKind]map[string]struct{}),
	}
}

// Known reports whether value was already registered under kind.
func (r *UniquenessRegistry) Known(kind IdentifierKind, value string) bool {
	_, ok := r.seen[kind][value]
	return ok
}

// Register records value under kind. Callers must register only values of
// fully accepted rows, and must not register the same value twice.
func (r *UniquenessRegistry) Register(kind IdentifierKind, value string) {
	set, ok := r.seen[kind]
	if !ok {
		set = make(map[string]struct{})
		r.seen[kind] = set
	}
	set[value] = struct{}{}
}
