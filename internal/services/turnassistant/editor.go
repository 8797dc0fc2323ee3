package turnassistant

import (
	"sync"

	"github.com/KirkDiggler/vgc-companion/internal/domain/battle"
	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
)

// Editor holds the committed battle conditions and an optional working draft.
// Edits touch only the draft; Apply swaps it in, Cancel throws it away.
type Editor struct {
	mu        sync.Mutex
	committed *battle.Conditions
	draft     *battle.Conditions
}

func NewEditor() *Editor {
	return &Editor{committed: battle.New()}
}

// Open starts a draft from the committed value. Opening an open editor keeps the current draft.
func (e *Editor) Open() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.draft == nil {
		e.draft = e.committed.Clone()
	}
}

func (e *Editor) IsOpen() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft != nil
}

// Apply commits the draft and closes the editor
func (e *Editor) Apply() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.draft == nil {
		return errNotOpen()
	}
	e.committed = e.draft
	e.draft = nil
	return nil
}

// Cancel discards the draft
func (e *Editor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = nil
}

// Reset returns committed and draft (when open) to defaults
func (e *Editor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.committed = battle.New()
	if e.draft != nil {
		e.draft = battle.New()
	}
}

// Load replaces the committed conditions with a copy of c. An open draft is left alone.
func (e *Editor) Load(c *battle.Conditions) {
	if c == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.committed = c.Clone()
}

// Committed returns a copy of the applied conditions
func (e *Editor) Committed() *battle.Conditions {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.committed.Clone()
}

// Draft returns a copy of the working draft
func (e *Editor) Draft() (*battle.Conditions, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.draft == nil {
		return nil, errNotOpen()
	}
	return e.draft.Clone(), nil
}

func (e *Editor) SetCondition(kind battle.Kind, value string) error {
	return e.edit(func(c *battle.Conditions) error {
		return c.SetCondition(kind, value)
	})
}

func (e *Editor) SetSideEffect(side battle.Side, effect battle.SideEffect, value battle.TriState) error {
	return e.edit(func(c *battle.Conditions) error {
		return c.SetSideEffect(side, effect, value)
	})
}

func (e *Editor) ToggleSideEffect(side battle.Side, effect battle.SideEffect) (battle.TriState, error) {
	var next battle.TriState
	err := e.edit(func(c *battle.Conditions) error {
		var err error
		next, err = c.ToggleSideEffect(side, effect)
		return err
	})
	return next, err
}

func (e *Editor) SetHazard(side battle.Side, hazard battle.Hazard, value battle.TriState) error {
	return e.edit(func(c *battle.Conditions) error {
		return c.SetHazard(side, hazard, value)
	})
}

func (e *Editor) ToggleHazard(side battle.Side, hazard battle.Hazard) (battle.TriState, error) {
	var next battle.TriState
	err := e.edit(func(c *battle.Conditions) error {
		var err error
		next, err = c.ToggleHazard(side, hazard)
		return err
	})
	return next, err
}

// SetDuration writes a clamped duration or level and returns the stored value
func (e *Editor) SetDuration(kind battle.DurationKind, key, raw string) (int, error) {
	var stored int
	err := e.edit(func(c *battle.Conditions) error {
		var err error
		stored, err = c.SetDuration(kind, key, raw)
		return err
	})
	return stored, err
}

// ClearAll resets the draft only; Apply still decides whether it sticks
func (e *Editor) ClearAll() error {
	return e.edit(func(c *battle.Conditions) error {
		c.ClearAll()
		return nil
	})
}

func (e *Editor) edit(fn func(*battle.Conditions) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.draft == nil {
		return errNotOpen()
	}
	if err := fn(e.draft); err != nil {
		return vgcerr.WrapWithCode(err, vgcerr.CodeValidation, err.Error())
	}
	return nil
}

func errNotOpen() error {
	return vgcerr.New(vgcerr.CodeInvalidArgument, "battle conditions editor is not open")
}
