package probe

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/meshsim/internal/core"
	"github.com/luxfi/meshsim/internal/network"
)

func TestClockMonotoneAndExceedsRealWork(t *testing.T) {
	cores := network.BuildTimed[int](1, 1, core.CostModel{}, nil)
	p := New[int](cores[0])
	last := p.Clock()
	time.Sleep(5 * time.Millisecond)
	now := p.Clock()
	require.GreaterOrEqual(t, now, last)
	require.GreaterOrEqual(t, now, 5*time.Millisecond)
}

// TestRecvAdvancesClockBySlack reproduces the scenario where a slow sender
// spins before sending: the receiver's clock after Recv reflects the time
// it waited, not just its own (near-zero) CPU work.
func TestRecvAdvancesClockBySlack(t *testing.T) {
	cores := network.BuildTimed[int](2, 1, core.CostModel{}, nil)
	senderCore, recvCore := cores[0], cores[1]

	var wg sync.WaitGroup
	wg.Add(2)

	var recvClock time.Duration
	go func() {
		defer wg.Done()
		sender := New[int](senderCore)
		time.Sleep(100 * time.Millisecond)
		sender.Send(1, core.Down)
	}()
	go func() {
		defer wg.Done()
		receiver := New[int](recvCore)
		receiver.Recv(core.Up)
		recvClock = receiver.Clock()
	}()
	wg.Wait()

	require.GreaterOrEqual(t, recvClock, 90*time.Millisecond)
}

func TestFinishCountsMessages(t *testing.T) {
	cores := network.BuildTimed[int](1, 2, core.CostModel{}, nil)
	var wg sync.WaitGroup
	wg.Add(2)
	var debugs [2]CoreDebug
	go func() {
		defer wg.Done()
		p := New[int](cores[0])
		p.Send(1, core.Row)
		p.Recv(core.Row)
		debugs[0] = p.Finish()
	}()
	go func() {
		defer wg.Done()
		p := New[int](cores[1])
		p.Recv(core.Row)
		debugs[1] = p.Finish()
	}()
	wg.Wait()
	require.Equal(t, 1, debugs[0].BroadcastMessages)
}
