package simulation

import (
	"time"

	"github.com/lao-tseu-is-alive/go-aquarium-boids/pb"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// Aquarium is the parent of every School. It forwards ticks from the render
// loop and keeps the latest snapshot of each species for the UI.
type Aquarium struct {
	cfg     *Config
	schools []*actor.PID
	species []string // spawn order, used to keep snapshots stable
	latest  map[string]*pb.FlockSnapshot
	frame   uint64
	// Communication with UI
	snapshotCh chan<- *pb.WorldSnapshot
	// --- Benchmark Stats ---
	msgSentCount int
	msgRecvCount int
	lastLogTime  time.Time
}

var _ actor.Actor = (*Aquarium)(nil)

// NewAquarium creates the aquarium. snapshotCh may be nil when nobody renders.
func NewAquarium(snapshotCh chan<- *pb.WorldSnapshot, cfg *Config) *Aquarium {
	return &Aquarium{
		cfg:         cfg,
		latest:      make(map[string]*pb.FlockSnapshot, len(cfg.Species)),
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

func (w *Aquarium) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Aquarium is filling a %.0fx%.0fx%.0f tank...",
		w.cfg.Tank.Width, w.cfg.Tank.Height, w.cfg.Tank.Depth)
	return nil
}

func (w *Aquarium) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Info("Aquarium started. Releasing schools...")
		w.spawnSchools(ctx)

	case *pb.FlockSnapshot:
		w.msgRecvCount++
		w.latest[msg.GetSpecies()] = msg

	// driven by the game loop, one per rendered frame
	case *pb.Tick:
		w.frame++
		w.logBenchmarks(ctx)
		w.broadcastTick(ctx)
		w.pushSnapshot()

	case *pb.GetSnapshot:
		ctx.Response(w.buildSnapshot())

	default:
		ctx.Unhandled()
	}
}

func (w *Aquarium) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Aquarium drained after %d ticks", w.frame)
	return nil
}

func (w *Aquarium) spawnSchools(ctx *actor.ReceiveContext) {
	for _, flock := range BuildSchools(w.cfg) {
		// take the first snapshot before the school owns the flock
		w.latest[flock.Name] = FlockToProto(flock)
		w.species = append(w.species, flock.Name)

		pid := ctx.Spawn("school-"+flock.Name, NewSchool(flock, ctx.Self()))
		if pid == nil {
			ctx.Logger().Errorf("failed to spawn the %s school", flock.Name)
			continue
		}
		w.schools = append(w.schools, pid)
	}
}

func (w *Aquarium) broadcastTick(ctx *actor.ReceiveContext) {
	for _, pid := range w.schools {
		w.msgSentCount++
		ctx.Tell(pid, &pb.Tick{Frame: w.frame})
	}
}

func (w *Aquarium) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		total := w.msgSentCount + w.msgRecvCount
		ctx.Logger().Debugf("MSG RATE: %d/sec (Sent: %d, Recv: %d) | Frame: %d",
			total, w.msgSentCount, w.msgRecvCount, w.frame)
		w.msgSentCount = 0
		w.msgRecvCount = 0
		w.lastLogTime = time.Now()
	}
}

func (w *Aquarium) pushSnapshot() {
	if w.snapshotCh == nil {
		return
	}
	select {
	case w.snapshotCh <- w.buildSnapshot():
	default:
		// UI busy, skip frame
	}
}

// buildSnapshot assembles the latest state of every school. A school still
// working on the current tick contributes its previous frame.
func (w *Aquarium) buildSnapshot() *pb.WorldSnapshot {
	snap := &pb.WorldSnapshot{
		Frame:  w.frame,
		Flocks: make([]*pb.FlockSnapshot, 0, len(w.species)),
	}
	for _, name := range w.species {
		fs, ok := w.latest[name]
		if !ok {
			continue
		}
		snap.Flocks = append(snap.Flocks, fs)
		snap.Population += int32(len(fs.GetBoids()))
	}
	return snap
}
