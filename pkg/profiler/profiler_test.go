package profiler

import (
	"testing"
	"time"
)

func TestDisabledProfilerIsNoop(t *testing.T) {
	p := New()

	if !p.CheckLoopProgress("loop-0", 1) {
		t.Fatalf("disabled profiler should always report progress")
	}
	if reason := p.CheckInstruction(1000); reason != AbortNone {
		t.Fatalf("disabled profiler should never abort, got %v", reason)
	}

	p.RecordAllocation(1, 16)
	if _, ok := p.Plan(1); ok {
		t.Fatalf("disabled profiler should not record allocations")
	}
}

func TestRecordAllocationTracksGrowth(t *testing.T) {
	p := New()
	p.Reset()

	tok := p.NextToken()
	p.RecordAllocation(tok, 8)

	plan, ok := p.Plan(tok)
	if !ok {
		t.Fatalf("expected a plan for token %d", tok)
	}
	if plan.PredictedSize != 8 || plan.MaxObservedSize != 8 || plan.AccessCount != 1 {
		t.Fatalf("unexpected plan after first allocation: %+v", plan)
	}

	p.RecordAllocation(tok, 32)
	plan, _ = p.Plan(tok)
	if plan.MaxObservedSize != 32 || plan.GrowthEvents != 1 || plan.AccessCount != 2 {
		t.Fatalf("unexpected plan after growing allocation: %+v", plan)
	}

	p.RecordAllocation(tok, 4)
	plan, _ = p.Plan(tok)
	if plan.MaxObservedSize != 32 || plan.GrowthEvents != 1 {
		t.Fatalf("a smaller request should not count as growth: %+v", plan)
	}
}

func TestRecordGrowthOnUnknownTokenIsNoop(t *testing.T) {
	p := New()
	p.Reset()

	p.RecordGrowth(999, 64)
	if _, ok := p.Plan(999); ok {
		t.Fatalf("RecordGrowth should not create a plan for an unseen token")
	}
}

func TestMaxMemoryPlansCapsTable(t *testing.T) {
	p := New()
	p.Reset()

	for i := 0; i < MaxMemoryPlans+100; i++ {
		p.RecordAllocation(p.NextToken(), 1)
	}
	if len(p.plans) != MaxMemoryPlans {
		t.Fatalf("expected plans table capped at %d, got %d", MaxMemoryPlans, len(p.plans))
	}
}

func TestNextGCFloor(t *testing.T) {
	p := New()
	p.Reset()

	p.RecordAllocation(p.NextToken(), 100)
	p.RecordAllocation(p.NextToken(), 200)

	want := uint64(float64(300) * 1.01)
	if got := p.NextGCFloor(); got != want {
		t.Fatalf("expected NextGCFloor %d, got %d", want, got)
	}
}

func TestCheckLoopProgressFlagsStagnantLoop(t *testing.T) {
	oldInterval, oldMax := LoopProgressCheckInterval, MaxLoopIterations
	LoopProgressCheckInterval = 1
	MaxLoopIterations = 2
	defer func() {
		LoopProgressCheckInterval = oldInterval
		MaxLoopIterations = oldMax
	}()

	p := New()
	p.Reset()

	const loopID = "fn@10"
	var last bool
	for i := 0; i < 5; i++ {
		last = p.CheckLoopProgress(loopID, 1)
		if !last {
			break
		}
	}
	if last {
		t.Fatalf("expected a stagnant loop making no progress to be flagged")
	}
}

func TestCheckLoopProgressToleratesRealWork(t *testing.T) {
	oldInterval, oldMax := LoopProgressCheckInterval, MaxLoopIterations
	LoopProgressCheckInterval = 1
	MaxLoopIterations = 2
	defer func() {
		LoopProgressCheckInterval = oldInterval
		MaxLoopIterations = oldMax
	}()

	p := New()
	p.Reset()

	const loopID = "fn@20"
	for i := 0; i < 10; i++ {
		p.RecordAllocation(p.NextToken(), 1)
		if !p.CheckLoopProgress(loopID, 1) {
			t.Fatalf("a loop that keeps allocating is making progress and should not be flagged")
		}
	}
}

func TestCheckInstructionTimeout(t *testing.T) {
	oldInterval, oldTimeout := InstructionCheckInterval, Timeout
	InstructionCheckInterval = 1
	Timeout = time.Millisecond
	defer func() {
		InstructionCheckInterval = oldInterval
		Timeout = oldTimeout
	}()

	p := New()
	p.Reset()
	time.Sleep(5 * time.Millisecond)

	if reason := p.CheckInstruction(1); reason != AbortTimeout {
		t.Fatalf("expected AbortTimeout, got %v", reason)
	}
}

func TestCheckInstructionExcessiveRecursion(t *testing.T) {
	oldInterval, oldTimeout, oldDepth := InstructionCheckInterval, Timeout, MaxRecursionDepth
	InstructionCheckInterval = 1
	Timeout = time.Hour
	MaxRecursionDepth = 4
	defer func() {
		InstructionCheckInterval = oldInterval
		Timeout = oldTimeout
		MaxRecursionDepth = oldDepth
	}()

	p := New()
	p.Reset()
	time.Sleep(5 * time.Millisecond)

	if reason := p.CheckInstruction(10); reason != AbortExcessiveRecurse {
		t.Fatalf("expected AbortExcessiveRecurse, got %v", reason)
	}
}
