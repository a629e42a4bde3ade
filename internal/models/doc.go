// Package models defines the core domain models for MeetCost.
//
// # Models
//
//   - Participant: One attendee with their compensation and activity state
//   - Meeting: A completed meeting with its computed cost aggregates
//   - Preset: Industry defaults used to seed participants
//
// Participants carry either an annual salary (full-time) or an hourly rate
// (contractor/unknown); the derived EffectiveHourlyRate is the single number
// all cost math runs on.
//
// # Design Principles
//
//  1. Models are plain data; all computation lives in internal/calculator
//     and internal/score
//  2. A Meeting is immutable once built; history updates replace the whole
//     record by ID
//  3. Optional numeric fields use the zero value to mean "not set" (costs
//     are never negative)
package models
