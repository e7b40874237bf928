package lexicon

// OutcomeKind describes what a typed character did.
type OutcomeKind int

const (
	OutcomeNone      OutcomeKind = iota // No word starts with the character
	OutcomeLocked                       // A new target was selected
	OutcomeAdvanced                     // The locked word accepted the character
	OutcomeCompleted                    // The locked word is fully typed
	OutcomeDropped                      // A mismatch released the lock
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "none"
	case OutcomeLocked:
		return "locked"
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeCompleted:
		return "completed"
	case OutcomeDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// Outcome is the result of one typed character.
type Outcome struct {
	Kind   OutcomeKind
	Entity *Entity // Word affected, nil for OutcomeNone
}

// Typist is the targeting state machine. It is Idle or Locked onto one word.
// The lock is held by ID and checked against the registry before each use.
type Typist struct {
	locked EntityID
	active bool
}

// Target returns the locked word. A lock on a word that left the registry
// is dropped silently.
func (t *Typist) Target(reg *Registry) (*Entity, bool) {
	if !t.active {
		return nil, false
	}
	e, ok := reg.Get(t.locked)
	if !ok {
		t.active = false
		t.locked = 0
		return nil, false
	}
	return e, true
}

// Type feeds one lower-case character to the state machine.
// On OutcomeCompleted the lock is already released; the caller removes the word.
func (t *Typist) Type(reg *Registry, ch rune) Outcome {
	target, ok := t.Target(reg)
	if !ok {
		target = selectTarget(reg, ch)
		if target == nil {
			return Outcome{Kind: OutcomeNone}
		}
		target.Typed = 1
		if target.Done() {
			return Outcome{Kind: OutcomeCompleted, Entity: target}
		}
		t.locked = target.ID
		t.active = true
		return Outcome{Kind: OutcomeLocked, Entity: target}
	}

	if rune(target.Text[target.Typed]) != ch {
		target.Typed = 0
		t.active = false
		t.locked = 0
		return Outcome{Kind: OutcomeDropped, Entity: target}
	}

	target.Typed++
	if target.Done() {
		t.active = false
		t.locked = 0
		return Outcome{Kind: OutcomeCompleted, Entity: target}
	}
	return Outcome{Kind: OutcomeAdvanced, Entity: target}
}

// Release drops the lock and clears the progress of the locked word.
func (t *Typist) Release(reg *Registry) {
	if e, ok := t.Target(reg); ok {
		e.Typed = 0
	}
	t.active = false
	t.locked = 0
}

// selectTarget picks the shortest word starting with ch.
// Ties go to the word spawned first.
func selectTarget(reg *Registry, ch rune) *Entity {
	var best *Entity
	for _, e := range reg.items {
		if e.Text == "" || rune(e.Text[0]) != ch {
			continue
		}
		if best == nil || len(e.Text) < len(best.Text) {
			best = e
		}
	}
	return best
}
