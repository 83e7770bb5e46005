package selection

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by Select for an index outside the item list.
var ErrIndexOutOfRange = errors.New("selection index out of range")

// State is the canonical item list and the single selected entry.
type State struct {
	Items    []Item
	Selected Item
	Index    int
}

// NewState seeds the state for a freshly constructed picker. Seeding never
// produces a notification.
func NewState(in Inputs) State {
	items := BuildItems(in.Placeholder, in.Items)
	selected, idx := Resolve(items, in.Target)
	return State{
		Items:    items,
		Selected: selected,
		Index:    idx,
	}
}

// Sync reconciles prev with new host inputs.
//
// The item list is rebuilt and compared structurally with prev.Items. The
// selection is re-resolved against the rebuilt list and counts as changed
// only when the target value is set and the resolved item differs from
// prev.Selected. With neither change prev is returned as is and the Change
// is nil; otherwise the Change carries the resolved value and index.
func Sync(prev State, in Inputs) (State, *Change) {
	items := BuildItems(in.Placeholder, in.Items)
	itemsChanged := !Equal(prev.Items, items)

	selected, idx := Resolve(items, in.Target)
	selectionChanged := in.Target.Set && !Equal(prev.Selected, selected)

	if !itemsChanged && !selectionChanged {
		return prev, nil
	}

	next := prev
	if itemsChanged {
		next.Items = items
	}
	switch {
	case selectionChanged:
		next.Selected = selected
		next.Index = idx
	case itemsChanged:
		// Keep the current pick, it may just have moved. If it is gone the
		// resolved item takes over so Selected stays a member of Items.
		if i := indexOf(items, prev.Selected); i >= 0 {
			next.Index = i
		} else {
			next.Selected = selected
			next.Index = idx
		}
	}

	return next, &Change{
		Value: selected.Value,
		Index: idx,
		Cause: CauseInputs,
	}
}

// Select applies a direct user pick. The Change is produced even when index
// is already selected.
func Select(state State, index int) (State, Change, error) {
	if index < 0 || index >= len(state.Items) {
		return state, Change{}, fmt.Errorf("%w: index %d, %d items", ErrIndexOutOfRange, index, len(state.Items))
	}

	item := state.Items[index]
	state.Selected = item
	state.Index = index

	return state, Change{
		Value: item.Value,
		Index: index,
		Cause: CauseUser,
	}, nil
}

func indexOf(items []Item, item Item) int {
	if item.IsZero() {
		if len(items) == 0 {
			return 0
		}
		return -1
	}
	for i := range items {
		if Equal(items[i], item) {
			return i
		}
	}
	return -1
}
