package symtab

import "log/slog"

// Binding is the record stored for one name in one scope.
//
// Only Value changes after creation: re-assigning a name in the same scope
// overwrites Value and keeps the original Nature, Type, and Address.
type Binding struct {
	Name string `json:"name" yaml:"name"`
	// Nature is the binding's category, such as "local" or "para".
	Nature string `json:"nature" yaml:"nature"`
	// Type is an optional type tag; empty means untyped.
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	Value int64  `json:"value" yaml:"value"`
	// Address is a simulated storage offset. It is informational only and
	// zero when unassigned.
	Address int64 `json:"address,omitempty" yaml:"address,omitempty"`
}

// LogValue implements slog.LogValuer.
func (b Binding) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("name", b.Name),
		slog.String("nature", b.Nature),
		slog.Int64("value", b.Value),
	}

	if b.Type != "" {
		attrs = append(attrs, slog.String("type", b.Type))
	}

	if b.Address != 0 {
		attrs = append(attrs, slog.Int64("address", b.Address))
	}

	return slog.GroupValue(attrs...)
}

// Resolved is the result of a successful [Tree.Lookup]: the binding found
// and the id of the scope that owns it.
type Resolved struct {
	Binding

	ScopeID int `json:"scope" yaml:"scope"`
}

// LogValue implements slog.LogValuer.
func (r Resolved) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("binding", r.Binding),
		slog.Int("scope", r.ScopeID),
	)
}
