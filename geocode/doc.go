// Package geocode resolves station names to geographic coordinates.
//
// Resolution is total: an authoritative feed entry, then a normalized
// override, then a deterministic synthetic position derived from a stable
// hash of the name. The same name always resolves to the same coordinate
// within one session, and absent external sources never cause an error.
package geocode
