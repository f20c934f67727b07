package toggle

import (
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

var epoch = time.Unix(1700000000, 0)

// testSwitch pins the clock and bypasses zone hit-testing so gestures can be
// driven with raw mouse messages.
func testSwitch(cfg Config) Model {
	m := New("sw", cfg)
	m.now = func() time.Time { return epoch }
	m.hit = func(tea.MouseMsg) bool { return true }
	return m
}

func press(m Model, x int) Model {
	m, _ = m.Update(tea.MouseMsg{X: x, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return m
}

func motion(m Model, x int) Model {
	m, _ = m.Update(tea.MouseMsg{X: x, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	return m
}

func release(m Model) (Model, tea.Cmd) {
	return m.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
}

func frame(m Model, after time.Duration) Model {
	m, _ = m.Update(FrameMsg{ID: m.ID(), Time: epoch.Add(after)})
	return m
}

// collectMsgs executes a command tree and returns every resulting message.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func findConfirm(msgs []tea.Msg) (ConfirmResultMsg, bool) {
	for _, msg := range msgs {
		if res, ok := msg.(ConfirmResultMsg); ok {
			return res, true
		}
	}
	return ConfirmResultMsg{}, false
}

// Default geometry: 40x21, so one cell is five track units.

func TestCommit_AsyncConfirmFlipsValue(t *testing.T) {
	var confirms, changes []bool
	m := testSwitch(Config{
		OnAsyncPress: func(next bool, respond func(bool)) {
			confirms = append(confirms, next)
			respond(true)
		},
		OnChange: func(v bool) { changes = append(changes, v) },
	})

	m = press(m, 10)
	m = motion(m, 11) // dx = +5, inside the dead-zone
	m, cmd := release(m)

	res, ok := findConfirm(collectMsgs(cmd))
	if !ok {
		t.Fatal("release did not produce a confirm verdict")
	}
	if !res.Next || !res.OK {
		t.Fatalf("verdict = %+v, want Next=true OK=true", res)
	}
	if len(confirms) != 1 || !confirms[0] {
		t.Fatalf("confirms = %v, want [true]", confirms)
	}

	m, _ = m.Update(res)
	if m.Value() {
		t.Fatal("value flipped before the track slide completed")
	}
	if len(changes) != 0 {
		t.Fatal("OnChange fired before the commit finalized")
	}

	m = frame(m, 250*time.Millisecond)
	if !m.Value() {
		t.Fatal("value = false after commit, want true")
	}
	if m.Alignment() != AlignTrailing {
		t.Fatalf("Alignment = %v, want trailing", m.Alignment())
	}
	if len(changes) != 1 || !changes[0] {
		t.Fatalf("changes = %v, want [true]", changes)
	}
	if m.Animating() {
		t.Fatal("frames still scheduled after everything settled")
	}
}

func TestRelease_ReversalOutsideDeadZoneDoesNotConfirm(t *testing.T) {
	var confirms []bool
	m := testSwitch(Config{
		OnAsyncPress: func(next bool, respond func(bool)) {
			confirms = append(confirms, next)
			respond(true)
		},
	})

	m = press(m, 10)
	m = motion(m, 7) // dx = -15, crosses the -10 reversal threshold while off
	m, cmd := release(m)

	if _, ok := findConfirm(collectMsgs(cmd)); ok {
		t.Fatal("ineligible release must not consult the confirmer")
	}
	if len(confirms) != 0 {
		t.Fatalf("confirms = %v, want none", confirms)
	}
	m = frame(m, 250*time.Millisecond)
	if m.Value() {
		t.Fatal("value changed on an ineligible release")
	}
}

func TestCommit_OnSwitchThatIsOn_LeftDragCommits(t *testing.T) {
	m := testSwitch(Config{Value: true})

	m = press(m, 10)
	m = motion(m, 7) // dx = -15: toward the off side, still eligible
	m, cmd := release(m)

	res, ok := findConfirm(collectMsgs(cmd))
	if !ok {
		t.Fatal("eligible release did not produce a confirm verdict")
	}
	if res.Next {
		t.Fatal("verdict Next = true, want false (flipping off)")
	}
	m, _ = m.Update(res)
	m = frame(m, 250*time.Millisecond)
	if m.Value() {
		t.Fatal("value = true after commit, want false")
	}
	if m.Alignment() != AlignLeading {
		t.Fatalf("Alignment = %v, want leading", m.Alignment())
	}
}

func TestCommit_SyncPressSkipsConfirmer(t *testing.T) {
	var syncs []bool
	m := testSwitch(Config{
		OnSyncPress: func(v bool) { syncs = append(syncs, v) },
		OnAsyncPress: func(bool, func(bool)) {
			panic("async confirmer consulted despite sync handler")
		},
	})

	m = press(m, 10)
	m, cmd := release(m)
	collectMsgs(cmd)

	m = frame(m, 250*time.Millisecond)
	if !m.Value() {
		t.Fatal("sync commit did not flip the value")
	}
	if len(syncs) != 1 || !syncs[0] {
		t.Fatalf("syncs = %v, want [true]", syncs)
	}
}

func TestCommit_VetoLeavesValueAndTrack(t *testing.T) {
	var changes []bool
	m := testSwitch(Config{
		OnAsyncPress: func(_ bool, respond func(bool)) { respond(false) },
		OnChange:     func(v bool) { changes = append(changes, v) },
	})

	before := m.track.Current()
	m = press(m, 10)
	m, cmd := release(m)
	res, ok := findConfirm(collectMsgs(cmd))
	if !ok || res.OK {
		t.Fatalf("want vetoing verdict, got %+v ok=%v", res, ok)
	}
	m, _ = m.Update(res)
	m = frame(m, 250*time.Millisecond)

	if m.Value() {
		t.Fatal("vetoed commit changed the value")
	}
	if got := m.track.Current(); got != before {
		t.Fatalf("track driver = %v after veto, want %v", got, before)
	}
	if len(changes) != 0 {
		t.Fatalf("changes = %v, want none on veto", changes)
	}
}

func TestSetValue_ControlledOverride(t *testing.T) {
	m := testSwitch(Config{
		OnAsyncPress: func(bool, func(bool)) { panic("confirmer consulted on reconcile") },
		OnChange:     func(bool) { panic("OnChange fired on reconcile") },
	})

	m, cmd := m.SetValue(true)
	if cmd == nil {
		t.Fatal("external value change should start the slide")
	}
	if m.Value() {
		t.Fatal("value flipped before the slide completed")
	}
	m = frame(m, 250*time.Millisecond)
	if !m.Value() {
		t.Fatal("value = false after external override, want true")
	}
	if m.Alignment() != AlignTrailing {
		t.Fatalf("Alignment = %v, want trailing", m.Alignment())
	}
}

func TestSetValue_SameValueIsNoop(t *testing.T) {
	m := testSwitch(Config{})

	m, cmd := m.SetValue(false)
	if cmd != nil {
		t.Fatal("SetValue matching the internal value should be a no-op")
	}
	m, cmd = m.SetValue(false)
	if cmd != nil {
		t.Fatal("repeated SetValue with an unchanged value should be a no-op")
	}
}

func TestSetValue_InternalEchoNotOverridden(t *testing.T) {
	m := testSwitch(Config{})
	m, _ = m.SetValue(false) // controlled, matching

	// User gesture commits the switch on.
	m = press(m, 10)
	m, cmd := release(m)
	res, ok := findConfirm(collectMsgs(cmd))
	if !ok {
		t.Fatal("no confirm verdict from default confirmer")
	}
	m, _ = m.Update(res)
	m = frame(m, 250*time.Millisecond)
	if !m.Value() {
		t.Fatal("gesture commit did not land")
	}

	// The external value is unchanged; re-applying it must not override the
	// internal change.
	m, cmd = m.SetValue(false)
	if cmd != nil {
		t.Fatal("unchanged external value overrode a gesture commit")
	}
	if !m.Value() {
		t.Fatal("value reverted by an unchanged external value")
	}
}

func TestConfirm_StaleVerdictDropped(t *testing.T) {
	m := testSwitch(Config{
		OnAsyncPress: func(bool, func(bool)) {
			// Never responds; verdicts are injected by hand below.
		},
	})

	m = press(m, 10)
	m, _ = release(m) // gesture 1, verdict outstanding
	m = press(m, 10)
	m, _ = release(m) // gesture 2 supersedes it

	stale := ConfirmResultMsg{ID: m.ID(), Gen: 1, Next: true, OK: true}
	m, _ = m.Update(stale)
	if m.pending != nil {
		t.Fatal("stale verdict started a slide")
	}
	m = frame(m, 250*time.Millisecond)
	if m.Value() {
		t.Fatal("stale verdict committed a value")
	}

	current := ConfirmResultMsg{ID: m.ID(), Gen: m.gen, Next: true, OK: true}
	m, _ = m.Update(current)
	m = frame(m, 500*time.Millisecond)
	if !m.Value() {
		t.Fatal("current verdict did not commit")
	}
}

func TestDisabled_IgnoresGestures(t *testing.T) {
	m := testSwitch(Config{
		Disabled:     true,
		OnAsyncPress: func(bool, func(bool)) { panic("confirmer consulted while disabled") },
		OnChange:     func(bool) { panic("OnChange fired while disabled") },
	})

	m = press(m, 10)
	m = motion(m, 15)
	m, cmd := release(m)
	if msgs := collectMsgs(cmd); len(msgs) != 0 {
		t.Fatalf("disabled gesture produced messages: %v", msgs)
	}
	if m.Value() || m.Dragging() {
		t.Fatal("disabled gesture changed state")
	}
}

func TestRoundTrip_RestoresRestPosition(t *testing.T) {
	m := testSwitch(Config{})
	restOff := m.track.Current()

	tap := func(m Model) Model {
		m, cmd := m.Press()
		res, ok := findConfirm(collectMsgs(cmd))
		if !ok {
			t.Fatal("tap produced no confirm verdict")
		}
		m, _ = m.Update(res)
		return frame(m, 250*time.Millisecond)
	}

	m = tap(m)
	if !m.Value() || m.Alignment() != AlignTrailing {
		t.Fatalf("after tap on: value=%v alignment=%v", m.Value(), m.Alignment())
	}
	m = tap(m)
	if m.Value() || m.Alignment() != AlignLeading {
		t.Fatalf("after tap off: value=%v alignment=%v", m.Value(), m.Alignment())
	}
	if got := m.track.Current(); got != restOff {
		t.Fatalf("track driver = %v after round trip, want %v bit-for-bit", got, restOff)
	}
}

func TestFrameAndConfirmRouting_OtherIDIgnored(t *testing.T) {
	m := testSwitch(Config{})
	m, cmd := m.Update(FrameMsg{ID: "other", Time: epoch})
	if cmd != nil {
		t.Fatal("frame for another switch produced a command")
	}
	m, _ = m.Update(ConfirmResultMsg{ID: "other", Gen: 1, Next: true, OK: true})
	if m.pending != nil || m.Value() {
		t.Fatal("verdict for another switch was applied")
	}
}

func TestView_Renders(t *testing.T) {
	m := testSwitch(Config{})
	if m.View() == "" {
		t.Fatal("View returned an empty string")
	}
	m = m.SetDisabled(true)
	if m.View() == "" {
		t.Fatal("View returned an empty string while disabled")
	}
}

func TestSpringSlide_CommitSettles(t *testing.T) {
	m := testSwitch(Config{SpringSlide: true})

	m, cmd := m.Press()
	res, ok := findConfirm(collectMsgs(cmd))
	if !ok {
		t.Fatal("tap produced no confirm verdict")
	}
	m, _ = m.Update(res)

	for i := 0; i < 600 && !m.Value(); i++ {
		m = frame(m, time.Duration(i+1)*frameInterval)
	}
	if !m.Value() {
		t.Fatal("spring slide never settled into the commit")
	}
	if got, want := m.track.Current(), m.trackTarget(true); got != want {
		t.Fatalf("track driver = %v, want %v", got, want)
	}
}
