package channel

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectFIFO(t *testing.T) {
	a, b := NewDirectPair[int]()
	a.Send(1)
	a.Send(2)
	require.Equal(t, 1, b.Recv())
	require.Equal(t, 2, b.Recv())
}

func TestDirectBidirectional(t *testing.T) {
	a, b := NewDirectPair[string]()
	b.Send("pong")
	a.Send("ping")
	require.Equal(t, "ping", b.Recv())
	require.Equal(t, "pong", a.Recv())
}

func TestBroadcastIncludesSender(t *testing.T) {
	ends := NewBroadcastGroup[int](3, nil)
	ends[1].Send(42)
	for _, e := range ends {
		require.Equal(t, 42, e.Recv())
	}
}

func TestBroadcastFIFOPerSender(t *testing.T) {
	ends := NewBroadcastGroup[string](2, nil)
	ends[0].Send("a")
	ends[0].Send("b")
	require.Equal(t, "a", ends[1].Recv())
	require.Equal(t, "b", ends[1].Recv())
}

// TestBroadcastAtomicAcrossSenders exercises the FIFO-agreement invariant:
// two senders racing on the same group must be observed in the same
// relative order by every receiver, never interleaved mid-delivery.
func TestBroadcastAtomicAcrossSenders(t *testing.T) {
	ends := NewBroadcastGroup[string](4, nil)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); ends[0].Send("a"); ends[0].Send("b") }()
	go func() { defer wg.Done(); ends[2].Send("c"); ends[2].Send("d") }()
	wg.Wait()

	type observed [][2]string
	perReceiver := make([]map[string]int, len(ends))
	for i, e := range ends {
		perReceiver[i] = map[string]int{}
		for k := 0; k < 4; k++ {
			v := e.Recv()
			perReceiver[i][v] = k
		}
	}
	for i := range ends {
		require.Less(t, perReceiver[i]["a"], perReceiver[i]["b"])
		require.Less(t, perReceiver[i]["c"], perReceiver[i]["d"])
	}
	// every receiver agrees on the relative order of {a,c} and of {b,d}
	firstOrderAC := perReceiver[0]["a"] < perReceiver[0]["c"]
	firstOrderBD := perReceiver[0]["b"] < perReceiver[0]["d"]
	for i := range ends {
		require.Equal(t, firstOrderAC, perReceiver[i]["a"] < perReceiver[i]["c"])
		require.Equal(t, firstOrderBD, perReceiver[i]["b"] < perReceiver[i]["d"])
	}
}

func TestBroadcastCloneIndependence(t *testing.T) {
	type box struct{ n int }
	ends := NewBroadcastGroup[*box](2, func(b *box) *box { c := *b; return &c })
	ends[0].Send(&box{n: 1})
	a := ends[0].Recv()
	b := ends[1].Recv()
	require.NotSame(t, a, b)
	a.n = 99
	require.Equal(t, 1, b.n)
}
