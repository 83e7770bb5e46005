package selection

// Item is a single selectable entry.
type Item struct {
	Label      string `yaml:"label" toml:"label" json:"label"`
	Value      any    `yaml:"value" toml:"value" json:"value"`
	Key        any    `yaml:"key,omitempty" toml:"key,omitempty" json:"key,omitempty"`                         // string or number, overrides Value for matching
	InputLabel string `yaml:"input_label,omitempty" toml:"input_label,omitempty" json:"input_label,omitempty"` // Shown in the closed input instead of Label
	Color      string `yaml:"color,omitempty" toml:"color,omitempty" json:"color,omitempty"`                   // Text color override
	TestID     string `yaml:"test_id,omitempty" toml:"test_id,omitempty" json:"test_id,omitempty"`
}

// DisplayLabel returns the text shown in the closed input for this item.
func (i Item) DisplayLabel() string {
	if i.InputLabel != "" {
		return i.InputLabel
	}
	return i.Label
}

// IsZero reports whether the item is the empty record returned when
// resolution has nothing to choose from.
func (i Item) IsZero() bool {
	return Equal(i, Item{})
}

// Placeholder is the "nothing selected yet" sentinel prepended to the item
// list. The zero Placeholder contributes no entry.
type Placeholder struct {
	Label string `yaml:"label,omitempty" toml:"label,omitempty"`
	Value any    `yaml:"value,omitempty" toml:"value,omitempty"`
	Key   any    `yaml:"key,omitempty" toml:"key,omitempty"`
	Color string `yaml:"color,omitempty" toml:"color,omitempty"`
}

// DefaultPlaceholderLabel is used when the host does not configure a
// placeholder. Localized hosts replace it through i18n.
const DefaultPlaceholderLabel = "Select an item..."

// DefaultPlaceholderColor is the muted text color of the default placeholder.
const DefaultPlaceholderColor = "#9EA0A4"

// DefaultPlaceholder returns the placeholder applied when none is configured.
func DefaultPlaceholder() Placeholder {
	return Placeholder{
		Label: DefaultPlaceholderLabel,
		Value: nil,
		Color: DefaultPlaceholderColor,
	}
}

// IsEmpty reports whether p is the empty sentinel.
func (p Placeholder) IsEmpty() bool {
	return Equal(p, Placeholder{})
}

// Item converts the placeholder into the leading list entry.
func (p Placeholder) Item() Item {
	return Item{
		Label: p.Label,
		Value: p.Value,
		Key:   p.Key,
		Color: p.Color,
	}
}

// Target is the externally requested selection. Set distinguishes "no value
// supplied" from an explicit nil value.
type Target struct {
	Key   any
	Value any
	Set   bool
}

// TargetValue returns a Target selecting by value.
func TargetValue(v any) Target {
	return Target{Value: v, Set: true}
}

// TargetKey returns a Target selecting by key. The value stays unset, so a
// key that matches nothing falls back to the first item without a change
// notification.
func TargetKey(k any) Target {
	return Target{Key: k}
}

// Inputs are everything the host supplies and may change between updates.
type Inputs struct {
	Placeholder Placeholder
	Items       []Item
	Target      Target
}

// Cause records why a Change was emitted.
type Cause int

const (
	// CauseUser is a direct pick in the presentation layer.
	CauseUser Cause = iota
	// CauseInputs is a resync after the host changed items, placeholder or value.
	CauseInputs
)

// String returns the cause name used in logs.
func (c Cause) String() string {
	switch c {
	case CauseUser:
		return "user"
	case CauseInputs:
		return "inputs"
	default:
		return "unknown"
	}
}

// Change is the value-change notification delivered to the host.
type Change struct {
	Value any
	Index int
	Cause Cause
}

// Orientation sizes the presentation surface.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

// String returns "portrait" or "landscape".
func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}
