package selection

import (
	"go.uber.org/zap"
)

// Option configures a Controller.
type Option func(*Controller)

// WithOnValueChange registers the value-change notification. It fires for
// user picks and for input resyncs that change items or selection.
func WithOnValueChange(fn func(value any, index int)) Option {
	return func(c *Controller) {
		c.onValueChange = fn
	}
}

// WithOnOpen registers the callback fired when the picker expands.
func WithOnOpen(fn func()) Option {
	return func(c *Controller) {
		c.onOpen = fn
	}
}

// WithOnClose registers the callback fired when the picker collapses. done
// is true when the collapse came from the confirm (Done) action.
func WithOnClose(fn func(done bool)) Option {
	return func(c *Controller) {
		c.onClose = fn
	}
}

// WithLogger sets the logger used for state transition debugging.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithDisabled starts the controller disabled.
func WithDisabled(disabled bool) Option {
	return func(c *Controller) {
		c.disabled = disabled
	}
}

// Controller owns one picker's SelectionState and its visibility flags.
// It is not safe for concurrent use; callers dispatch events from a single
// UI loop.
type Controller struct {
	state State

	open          bool
	doneDepressed bool
	orientation   Orientation
	disabled      bool

	onValueChange func(value any, index int)
	onOpen        func()
	onClose       func(done bool)

	log *zap.Logger
}

// New creates a controller seeded from in. No notification fires.
func New(in Inputs, opts ...Option) *Controller {
	c := &Controller{
		state: NewState(in),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.log.Debug("selection seeded",
		zap.Int("items", len(c.state.Items)),
		zap.Int("index", c.state.Index),
		zap.String("label", c.state.Selected.Label),
	)
	return c
}

// Update resyncs with new host inputs and reports whether a notification
// was sent.
func (c *Controller) Update(in Inputs) bool {
	next, change := Sync(c.state, in)
	if change == nil {
		return false
	}
	c.state = next

	c.log.Debug("selection resynced",
		zap.Int("items", len(next.Items)),
		zap.Int("index", change.Index),
		zap.Any("value", change.Value),
	)
	c.notify(*change)
	return true
}

// Select applies a user pick. The notification always fires for a valid index.
func (c *Controller) Select(index int) error {
	next, change, err := Select(c.state, index)
	if err != nil {
		c.log.Error("invalid selection", zap.Error(err))
		return err
	}
	c.state = next

	c.log.Debug("item selected",
		zap.Int("index", index),
		zap.String("label", next.Selected.Label),
		zap.Any("value", change.Value),
	)
	c.notify(change)
	return nil
}

func (c *Controller) notify(change Change) {
	if c.onValueChange != nil {
		c.onValueChange(change.Value, change.Index)
	}
}

// Toggle flips the expanded flag. Opening fires OnOpen, closing fires
// OnClose(done). A disabled controller ignores the request and returns false.
func (c *Controller) Toggle(done bool) bool {
	if c.disabled {
		c.log.Debug("toggle ignored, picker disabled")
		return false
	}

	if !c.open {
		if c.onOpen != nil {
			c.onOpen()
		}
	} else if c.onClose != nil {
		c.onClose(done)
	}

	c.open = !c.open
	if !c.open {
		c.doneDepressed = false
	}

	c.log.Debug("picker toggled", zap.Bool("open", c.open), zap.Bool("done", done))
	return true
}

// SetDoneDepressed records the pressed state of the confirm control.
func (c *Controller) SetDoneDepressed(pressed bool) {
	c.doneDepressed = pressed
}

// SetOrientation records the surface orientation.
func (c *Controller) SetOrientation(o Orientation) {
	c.orientation = o
}

// SetDisabled enables or disables open/close handling.
func (c *Controller) SetDisabled(disabled bool) {
	c.disabled = disabled
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	s := c.state
	s.Items = append([]Item(nil), c.state.Items...)
	return s
}

// Items returns the canonical item list. Callers must not modify it.
func (c *Controller) Items() []Item {
	return c.state.Items
}

// Selected returns the selected item.
func (c *Controller) Selected() Item {
	return c.state.Selected
}

// Index returns the position of the selected item.
func (c *Controller) Index() int {
	return c.state.Index
}

// Open reports whether the picker is expanded.
func (c *Controller) Open() bool {
	return c.open
}

// DoneDepressed reports whether the confirm control is held down.
func (c *Controller) DoneDepressed() bool {
	return c.doneDepressed
}

// Orientation returns the last recorded orientation.
func (c *Controller) Orientation() Orientation {
	return c.orientation
}

// Disabled reports whether open/close requests are ignored.
func (c *Controller) Disabled() bool {
	return c.disabled
}

// DisplayLabel is the text for the closed input.
func (c *Controller) DisplayLabel() string {
	return c.state.Selected.DisplayLabel()
}

// IsPlaceholderSelected reports whether the placeholder entry is showing, in
// which case hosts render the input in the placeholder style.
func (c *Controller) IsPlaceholderSelected(p Placeholder) bool {
	return !p.IsEmpty() && c.state.Selected.Label == p.Label
}
