// Package behavior implements the flocking core of the aquarium.
//
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// His paper on this topic was published in 1987 in the proceedings of the ACM SIGGRAPH
// conference. The name "boid" corresponds to a shortened version of "bird-oid object",
// which refers to a bird-like object. https://en.wikipedia.org/wiki/Boids
//
// Every Agent steers with three rules computed against the other members of its
// Flock (separation, alignment, cohesion), integrates the resulting acceleration
// and is then kept inside its tank by a soft wall nudge plus a hard position clamp.
// A Flock advances all of its agents in two passes so the outcome of a tick does
// not depend on the order in which agents are visited.
package behavior
