// Package trips provides the cleaned trip record model and loaders for
// monthly bike-share trip archives.
//
// Records arriving here are already validated: station names are non-empty
// and the member type is collapsed to Annual/Casual/Other. Downstream
// consumers treat records as read-only.
package trips
