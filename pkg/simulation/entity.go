package simulation

import (
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pb"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-aquarium-boids/pkg/geometry"
)

// VectorToProto converts a vector into its wire envelope.
func VectorToProto(v geometry.Vector3) *pb.Vec3 {
	return &pb.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// VectorFromProto tolerates nil, which decodes as the zero vector.
func VectorFromProto(p *pb.Vec3) geometry.Vector3 {
	return geometry.Vector3{X: p.GetX(), Y: p.GetY(), Z: p.GetZ()}
}

func QuaternionToProto(q geometry.Quaternion) *pb.Quat {
	return &pb.Quat{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

// QuaternionFromProto returns the identity for a missing orientation.
func QuaternionFromProto(p *pb.Quat) geometry.Quaternion {
	if p == nil {
		return geometry.Identity
	}
	return geometry.Quaternion{X: p.GetX(), Y: p.GetY(), Z: p.GetZ(), W: p.GetW()}
}

// AgentToProto converts one agent into the "Envelope" sent to the renderer and subscribers.
func AgentToProto(species string, index int, a *behavior.Agent) *pb.BoidState {
	return &pb.BoidState{
		Index:       int32(index),
		Species:     species,
		Position:    VectorToProto(a.Position),
		Velocity:    VectorToProto(a.Velocity),
		Orientation: QuaternionToProto(a.Orientation),
	}
}

// FlockToProto captures the current state of a whole school.
func FlockToProto(f *behavior.Flock) *pb.FlockSnapshot {
	snap := &pb.FlockSnapshot{
		Species: f.Name,
		Frame:   f.Frame(),
		Boids:   make([]*pb.BoidState, len(f.Agents)),
	}
	for i := range f.Agents {
		snap.Boids[i] = AgentToProto(f.Name, i, &f.Agents[i])
	}
	return snap
}

// UpdateFromProto copies the kinematic state of b into a
// without touching its behavioural parameters.
func UpdateFromProto(a *behavior.Agent, b *pb.BoidState) {
	a.Position = VectorFromProto(b.GetPosition())
	a.Velocity = VectorFromProto(b.GetVelocity())
	a.Orientation = QuaternionFromProto(b.GetOrientation())
}

// PresentSnapshot feeds the drawables from a snapshot received over the wire,
// the same way behavior.Flock.Present does in process.
func PresentSnapshot(snap *pb.FlockSnapshot, handles []behavior.Drawable) {
	for i, b := range snap.GetBoids() {
		if i >= len(handles) {
			return
		}
		if handles[i] == nil {
			continue
		}
		handles[i].SetTransform(VectorFromProto(b.GetPosition()), QuaternionFromProto(b.GetOrientation()))
	}
}
