package reactivity

import "testing"

func TestFrameSchedulerKeyedDedup(t *testing.T) {
	ClearFrames()
	x := 0
	ScheduleFrame(func() { x = 1 }, "k")
	ScheduleFrame(func() { x = 2 }, "k")
	ScheduleFrame(func() { x = 3 }, "k")
	FlushFrames()
	if x != 3 {
		t.Fatalf("x = %d, want 3 (last writer for key wins)", x)
	}
}

func TestFrameSchedulerKeyedBeforeAnonymous(t *testing.T) {
	ClearFrames()
	var order []string
	ScheduleFrame(func() { order = append(order, "anon") })
	ScheduleFrame(func() { order = append(order, "keyed") }, "k")
	FlushFrames()
	if len(order) != 2 || order[0] != "keyed" || order[1] != "anon" {
		t.Fatalf("order = %v, want [keyed anon]", order)
	}
}

func TestFrameSchedulerCancel(t *testing.T) {
	ClearFrames()
	ran := false
	ScheduleFrame(func() { ran = true }, "k")
	CancelFrame("k")
	FlushFrames()
	if ran {
		t.Fatalf("cancelled callback ran")
	}
}

func TestFrameSchedulerReschedulesToNextFrame(t *testing.T) {
	ClearFrames()
	rounds := 0
	var tick func()
	tick = func() {
		rounds++
		if rounds < 2 {
			ScheduleFrame(tick)
		}
	}
	ScheduleFrame(tick)
	FlushFrames()
	if rounds != 1 {
		t.Fatalf("rounds after first flush = %d, want 1 (reschedule must wait for the next flush)", rounds)
	}
	FlushFrames()
	if rounds != 2 {
		t.Fatalf("rounds after second flush = %d, want 2", rounds)
	}
}

func TestFrameSchedulerClearDiscardsPending(t *testing.T) {
	ClearFrames()
	ran := false
	ScheduleFrame(func() { ran = true })
	ClearFrames()
	FlushFrames()
	if ran {
		t.Fatalf("cleared callback ran")
	}
}
