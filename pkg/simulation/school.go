package simulation

import (
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pb"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/behavior"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// School is the actor owning one species. Its flock is only ever touched
// from inside Receive, so ticks never overlap.
type School struct {
	ID    string
	flock *behavior.Flock
	// world receives a FlockSnapshot after every tick, nil to stay silent.
	world *actor.PID
}

var _ actor.Actor = (*School)(nil)

// NewSchool wraps flock. The caller must not touch the flock once the actor is spawned.
func NewSchool(flock *behavior.Flock, world *actor.PID) *School {
	return &School{flock: flock, world: world}
}

func (s *School) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Released %d %s in the tank", s.flock.Len(), s.flock.Name)
	return nil
}

func (s *School) Receive(ctx *actor.ReceiveContext) {
	switch ctx.Message().(type) {
	case *goaktpb.PostStart:
		s.ID = ctx.Self().Name()
		ctx.Logger().Debugf("%s started", s.ID)

	case *pb.Tick:
		s.flock.Step()
		s.reportState(ctx)

	case *pb.GetSnapshot:
		ctx.Response(FlockToProto(s.flock))

	default:
		ctx.Unhandled()
	}
}

func (s *School) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("%s left the tank after %d ticks", s.flock.Name, s.flock.Frame())
	return nil
}

func (s *School) reportState(ctx *actor.ReceiveContext) {
	if s.world == nil {
		return
	}
	ctx.Tell(s.world, FlockToProto(s.flock))
}
