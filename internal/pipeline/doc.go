// Package pipeline implements route pipelines: an ordered list of
// processors applied to an [Exchange], followed by completion callbacks.
//
// A *Pipeline satisfies listener.Pipeline.
package pipeline
