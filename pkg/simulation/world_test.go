package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/lao-tseu-is-alive/go-aquarium-boids/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/log"
)

func newTestSystem(t *testing.T) (context.Context, actor.ActorSystem) {
	t.Helper()
	ctx := context.Background()
	system, err := actor.NewActorSystem("aquarium-test", actor.WithLogger(log.DiscardLogger))
	require.NoError(t, err)
	require.NoError(t, system.Start(ctx))
	t.Cleanup(func() { _ = system.Stop(ctx) })
	return ctx, system
}

func smallConfig() *Config {
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Species = []SpeciesConfig{
		{Name: "fish", Count: 8, Scale: 0.3, MaxSpeed: 1.2, MaxForce: 0.12},
		{Name: "turtle", Count: 3, Scale: 2, MaxSpeed: 0.7, MaxForce: 0.08},
	}
	return cfg
}

func askFlock(t *testing.T, ctx context.Context, pid *actor.PID) *pb.FlockSnapshot {
	t.Helper()
	reply, err := actor.Ask(ctx, pid, &pb.GetSnapshot{}, time.Second)
	require.NoError(t, err)
	snap, ok := reply.(*pb.FlockSnapshot)
	require.True(t, ok, "unexpected reply %T", reply)
	return snap
}

func askWorld(t *testing.T, ctx context.Context, pid *actor.PID) *pb.WorldSnapshot {
	t.Helper()
	reply, err := actor.Ask(ctx, pid, &pb.GetSnapshot{}, time.Second)
	require.NoError(t, err)
	snap, ok := reply.(*pb.WorldSnapshot)
	require.True(t, ok, "unexpected reply %T", reply)
	return snap
}

// peekWorld is askWorld for Eventually conditions, which run off the test goroutine.
func peekWorld(ctx context.Context, pid *actor.PID) *pb.WorldSnapshot {
	reply, err := actor.Ask(ctx, pid, &pb.GetSnapshot{}, time.Second)
	if err != nil {
		return nil
	}
	snap, _ := reply.(*pb.WorldSnapshot)
	return snap
}

func TestSchool_TicksAdvanceTheFlock(t *testing.T) {
	ctx, system := newTestSystem(t)
	flock := BuildSchools(smallConfig())[0]

	pid, err := system.Spawn(ctx, "school-fish", NewSchool(flock, nil))
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		require.NoError(t, actor.Tell(ctx, pid, &pb.Tick{Frame: uint64(i)}))
	}

	// the mailbox is FIFO, so the snapshot is taken after the five ticks
	snap := askFlock(t, ctx, pid)
	assert.Equal(t, "fish", snap.GetSpecies())
	assert.Equal(t, uint64(5), snap.GetFrame())
	require.Len(t, snap.GetBoids(), 8)
	for i, b := range snap.GetBoids() {
		assert.Equal(t, int32(i), b.GetIndex())
		assert.LessOrEqual(t, VectorFromProto(b.GetVelocity()).Len(), 1.2+1e-9)
	}
}

func TestAquarium_SpawnsSchoolsAndForwardsTicks(t *testing.T) {
	ctx, system := newTestSystem(t)
	cfg := smallConfig()
	snapshots := make(chan *pb.WorldSnapshot, 16)

	pid, err := system.Spawn(ctx, "aquarium", NewAquarium(snapshots, cfg))
	require.NoError(t, err)

	// before any tick the aquarium already knows every school
	require.Eventually(t, func() bool {
		return len(peekWorld(ctx, pid).GetFlocks()) == 2
	}, 2*time.Second, 20*time.Millisecond)

	const ticks = 4
	for i := 0; i < ticks; i++ {
		require.NoError(t, actor.Tell(ctx, pid, &pb.Tick{}))
	}

	require.Eventually(t, func() bool {
		snap := peekWorld(ctx, pid)
		for _, fs := range snap.GetFlocks() {
			if fs.GetFrame() != ticks {
				return false
			}
		}
		return snap.GetFrame() == ticks
	}, 2*time.Second, 20*time.Millisecond)

	snap := askWorld(t, ctx, pid)
	assert.Equal(t, int32(cfg.Population()), snap.GetPopulation())
	assert.Equal(t, "fish", snap.GetFlocks()[0].GetSpecies())
	assert.Equal(t, "turtle", snap.GetFlocks()[1].GetSpecies())

	select {
	case pushed := <-snapshots:
		assert.Equal(t, uint64(1), pushed.GetFrame())
	default:
		t.Fatal("expected a snapshot pushed to the UI channel")
	}
}

func TestAquarium_BuildSnapshotKeepsSpawnOrder(t *testing.T) {
	w := NewAquarium(nil, smallConfig())
	w.species = []string{"turtle", "fish"}
	w.latest["fish"] = &pb.FlockSnapshot{Species: "fish", Boids: make([]*pb.BoidState, 3)}
	w.latest["turtle"] = &pb.FlockSnapshot{Species: "turtle", Boids: make([]*pb.BoidState, 2)}
	w.frame = 7

	snap := w.buildSnapshot()
	assert.Equal(t, uint64(7), snap.GetFrame())
	assert.Equal(t, int32(5), snap.GetPopulation())
	require.Len(t, snap.GetFlocks(), 2)
	assert.Equal(t, "turtle", snap.GetFlocks()[0].GetSpecies())

	// a nil channel never blocks the actor
	w.pushSnapshot()
}
