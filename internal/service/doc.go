// Package service contains the report formatter and the one-shot pipeline.
//
// GenerateBody is a pure function from an ordered issue sequence and a
// report date to an HTML body. Reporter sequences the three stages,
// fetch, format, send, aborting on the first error.
package service
