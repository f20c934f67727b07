package toggle

import "testing"

func hasEffect(effects []Effect, want Effect) bool {
	for _, e := range effects {
		if e == want {
			return true
		}
	}
	return false
}

func TestMachine_GrantStartsToggleable(t *testing.T) {
	m := NewMachine(false, false)

	effects := m.Grant()
	if !hasEffect(effects, EffectPulseGrow) {
		t.Fatalf("Grant effects = %v, want pulse grow", effects)
	}
	if !m.Dragging() {
		t.Fatal("Dragging() = false after grant")
	}

	effects = m.Release()
	if !hasEffect(effects, EffectRequestCommit) {
		t.Fatalf("Release effects = %v, want commit request (no moves)", effects)
	}
}

func TestMachine_DeadZone(t *testing.T) {
	tests := []struct {
		name       string
		value      bool
		moves      []float64
		wantCommit bool
	}{
		{"off small forward drag", false, []float64{5}, true},
		{"off at negative boundary", false, []float64{-DeadZone}, false},
		{"off just inside dead-zone", false, []float64{-9}, true},
		{"off reversal cancels", false, []float64{-15}, false},
		{"off reversal then back", false, []float64{-15, 0}, true},
		{"on drag toward off side", true, []float64{-15}, true},
		{"on at positive boundary", true, []float64{DeadZone}, false},
		{"on just inside dead-zone", true, []float64{9}, true},
		{"on reversal cancels", true, []float64{15}, false},
		{"no moves at all", true, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(tt.value, false)
			m.Grant()
			for _, dx := range tt.moves {
				m.Move(dx)
			}
			effects := m.Release()
			if got := hasEffect(effects, EffectRequestCommit); got != tt.wantCommit {
				t.Fatalf("commit requested = %v, want %v (effects %v)", got, tt.wantCommit, effects)
			}
			if !hasEffect(effects, EffectPulseShrink) {
				t.Fatalf("Release effects = %v, want pulse shrink", effects)
			}
		})
	}
}

func TestMachine_DuplicateGrantResetsEligibility(t *testing.T) {
	m := NewMachine(false, false)
	m.Grant()
	m.Move(-15)
	// A second grant without an intervening release re-arms the gesture.
	m.Grant()
	if !hasEffect(m.Release(), EffectRequestCommit) {
		t.Fatal("duplicate grant should reset toggleable")
	}
}

func TestMachine_DisabledIgnoresEverything(t *testing.T) {
	m := NewMachine(true, true)

	if effects := m.Grant(); effects != nil {
		t.Fatalf("Grant while disabled = %v, want nil", effects)
	}
	m.Move(5)
	if effects := m.Release(); effects != nil {
		t.Fatalf("Release while disabled = %v, want nil", effects)
	}
	if !m.Value() {
		t.Fatal("disabled events must not change the value")
	}
}

func TestMachine_DisableMidGestureDropsRelease(t *testing.T) {
	m := NewMachine(false, false)
	m.Grant()
	m.SetDisabled(true)
	if effects := m.Release(); effects != nil {
		t.Fatalf("Release after disabling = %v, want nil", effects)
	}
}

func TestMachine_ReleaseWhileIdleIsNoop(t *testing.T) {
	m := NewMachine(false, false)
	if effects := m.Release(); effects != nil {
		t.Fatalf("Release while idle = %v, want nil", effects)
	}
}

func TestAlignment_TracksValue(t *testing.T) {
	m := NewMachine(false, false)
	if m.Alignment() != AlignLeading {
		t.Fatalf("Alignment = %v, want leading while off", m.Alignment())
	}
	m.Commit(true)
	if m.Alignment() != AlignTrailing {
		t.Fatalf("Alignment = %v, want trailing while on", m.Alignment())
	}
	m.Commit(false)
	if m.Alignment() != AlignLeading {
		t.Fatal("round-trip should restore leading alignment")
	}
	if AlignTrailing.String() != "trailing" || AlignLeading.String() != "leading" {
		t.Fatal("Alignment.String() mismatch")
	}
}
