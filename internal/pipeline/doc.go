// Package pipeline holds HTML post-processing steps shared by the
// rendering flow, currently stylesheet injection into rendered markup.
package pipeline
