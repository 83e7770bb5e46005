package selection

// BuildItems returns the canonical item list: the placeholder entry (unless
// the placeholder is empty) followed by the supplied items. The result never
// aliases items.
func BuildItems(placeholder Placeholder, items []Item) []Item {
	out := make([]Item, 0, len(items)+1)
	if !placeholder.IsEmpty() {
		out = append(out, placeholder.Item())
	}
	return append(out, items...)
}

// Resolve finds the item the target refers to and its index.
//
// Items are scanned in order and the first match wins. A candidate with a
// key is matched by key when the target has one; otherwise composite values
// are compared structurally and scalars by their string form. When nothing
// matches the first item is returned, and an empty list yields the zero
// Item at index 0.
func Resolve(items []Item, target Target) (Item, int) {
	idx, _ := Find(items, target)
	if idx >= len(items) {
		return Item{}, idx
	}
	return items[idx], idx
}

// Find returns the index of the first item matching target and true, or 0
// and false when nothing matches.
func Find(items []Item, target Target) (int, bool) {
	for i, item := range items {
		if matches(item, target) {
			return i, true
		}
	}
	return 0, false
}

func matches(item Item, target Target) bool {
	if present(item.Key) && present(target.Key) {
		return Equal(item.Key, target.Key)
	}
	if isComposite(item.Value) || (target.Set && isComposite(target.Value)) {
		if !target.Set {
			return false
		}
		return Equal(item.Value, target.Value)
	}
	return stringify(item.Value) == targetString(target)
}

func targetString(t Target) string {
	if !t.Set {
		return unsetString
	}
	return stringify(t.Value)
}
