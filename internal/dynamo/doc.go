// Package dynamo holds the small set of shared contracts the bounce
// packages agree on:
//
//   - [Configurable]: named parameter access with clamping
//   - [ParamError]: validation failure for a named parameter
//   - sentinel errors such as [ErrParameterBounds]
//
// The simulation core itself never returns errors. Everything in here
// exists for the edges: configuration files, presets and traces.
package dynamo
