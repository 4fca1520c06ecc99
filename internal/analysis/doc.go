// Package analysis runs the simulation headlessly and summarizes it.
//
// A trace drives a [sim.Driver] with synthetic timestamps at a fixed
// step, so the same configuration always yields the same samples:
//
//	res, err := analysis.Trace(ctx, cfg, 10, 1.0/240)
//	fmt.Println(analysis.PlotHeight(res, 80, 12))
//	fmt.Println(analysis.ApexRatios(res.Apexes))
//
// For an undisturbed vertical bounce each apex ratio approaches the
// square of the restitution coefficient.
package analysis
