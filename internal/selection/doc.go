// Package selection implements the state behind a single-choice picker.
//
// A picker shows an ordered list of items, optionally led by a placeholder
// entry, and exactly one of them is selected at any time. The package keeps
// that selection consistent with two sources of change:
//
//   - the host, which may swap the item list, the placeholder or the
//     requested value between renders (Sync / Controller.Update)
//   - the user, who picks an index in the presentation layer
//     (Select / Controller.Select)
//
// Both paths report a Change (value and index) to the host. Host driven
// resyncs are idempotent: feeding the same inputs twice notifies at most
// once. User picks always notify.
//
// # Matching
//
// Resolve compares by Key when both the candidate and the target carry one,
// structurally when either value is composite (maps, slices, structs), and
// by string form otherwise, so "2", 2 and 2.0 all select the same item. When
// nothing matches, the first item is selected; the picker never shows an
// empty selection while it has items.
//
// # Usage
//
//	ctrl := selection.New(selection.Inputs{
//	    Placeholder: selection.DefaultPlaceholder(),
//	    Items: []selection.Item{
//	        {Label: "Red", Value: "r"},
//	        {Label: "Blue", Value: "b"},
//	    },
//	    Target: selection.TargetValue("b"),
//	}, selection.WithOnValueChange(func(v any, i int) {
//	    fmt.Println("picked", v, "at", i)
//	}))
//
//	_ = ctrl.Select(1) // picked r at 1
package selection
