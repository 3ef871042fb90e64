// Package layout runs an iterative force-directed placement over the
// visible node/edge set.
//
// The simulation advances one step per rendered frame. Reseeding is
// incremental: surviving nodes keep their positions and pinned state, and
// only added or removed nodes perturb the layout. A cooling alpha decays
// toward a floor, so stepping a settled layout is a no-op.
package layout
