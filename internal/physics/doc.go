// Package physics implements the single-ball world: the coefficients in
// [World], the body in [Ball] and the integrator/collision resolver
// [Step].
//
// Step is a pure numeric function over its arguments. It mutates the
// ball in place and reports which walls were touched:
//
//	ball := physics.NewBall()
//	world := physics.DefaultWorld()
//	hit := physics.Step(ball, world, 1.0/60, physics.Bounds{W: 800, H: 600})
//	if hit.Contact.Has(physics.ContactFloor) {
//	    // play a sound, flash, count a bounce
//	}
//
// # Floor asymmetry
//
// Friction and the settle threshold apply only on floor contact. Walls
// and ceiling reflect with restitution alone.
package physics
