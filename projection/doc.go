// Package projection maps planar layout coordinates to screen coordinates.
//
// In 2D mode the transform is the identity with zoom applied about the
// viewport center. In 3D mode each node gets a stable hash-derived depth
// and the transform applies viewport translation, yaw, pitch (clamped) and
// a perspective divide. The returned scale factor must be applied to both
// node radii and edge stroke widths so elements touching at the same depth
// scale identically.
package projection
