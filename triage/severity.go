// Implements the severity classifier: four categorical questionnaire answers
// are summed into an urgency score, bucketed into a severity level, and the
// level is mapped to the priority value the waiting queue orders by.

package triage

import (
	"fmt"
	"strings"
)

// Consciousness is the answer to "level of consciousness".
type Consciousness string

const (
	ConsciousnessClear  Consciousness = "clear"
	ConsciousnessDrowsy Consciousness = "drowsy"
	ConsciousnessStupor Consciousness = "stupor"
	ConsciousnessComa   Consciousness = "coma"
)

// Respiration is the answer to "respiratory distress".
type Respiration string

const (
	RespirationNone     Respiration = "none"
	RespirationMild     Respiration = "mild"
	RespirationModerate Respiration = "moderate"
	RespirationSevere   Respiration = "severe"
)

// PainBleeding is the answer to "pain or bleeding level".
type PainBleeding string

const (
	PainNone     PainBleeding = "none"
	PainMinor    PainBleeding = "minor"
	PainModerate PainBleeding = "moderate"
	PainSevere   PainBleeding = "severe"
)

// Trauma is the answer to "visible trauma".
type Trauma string

const (
	TraumaNone              Trauma = "none"
	TraumaAbrasion          Trauma = "abrasion"
	TraumaFractureSuspected Trauma = "fracture-suspected"
	TraumaMultiple          Trauma = "multiple-trauma"
)

// Answers holds one completed intake questionnaire.
type Answers struct {
	Consciousness Consciousness
	Respiration   Respiration
	PainBleeding  PainBleeding
	Trauma        Trauma
}

// Per-axis contributions to the urgency score. The weights are deliberately
// non-uniform across axes: severe respiratory distress (20) outweighs
// multiple trauma (18), and consciousness loss sits between them. The
// clinical ranking lives in these tables, not in any formula.
var (
	consciousnessWeights = map[Consciousness]int{
		ConsciousnessClear:  0,
		ConsciousnessDrowsy: 3,
		ConsciousnessStupor: 7,
		ConsciousnessComa:   15,
	}
	respirationWeights = map[Respiration]int{
		RespirationNone:     0,
		RespirationMild:     4,
		RespirationModerate: 9,
		RespirationSevere:   20,
	}
	painWeights = map[PainBleeding]int{
		PainNone:     0,
		PainMinor:    2,
		PainModerate: 6,
		PainSevere:   12,
	}
	traumaWeights = map[Trauma]int{
		TraumaNone:              0,
		TraumaAbrasion:          3,
		TraumaFractureSuspected: 8,
		TraumaMultiple:          18,
	}
)

// SeverityLevel is the five-step ordered triage category, lowest to highest
// urgency: mild < moderate < severe < urgent < very-urgent.
type SeverityLevel string

const (
	SeverityMild       SeverityLevel = "mild"
	SeverityModerate   SeverityLevel = "moderate"
	SeveritySevere     SeverityLevel = "severe"
	SeverityUrgent     SeverityLevel = "urgent"
	SeverityVeryUrgent SeverityLevel = "very-urgent"
)

// severityPriority maps each level to the value the queue orders by.
// The queue never sees the raw urgency score: multiple scores collapse into
// one ordering bucket on purpose.
var severityPriority = map[SeverityLevel]int{
	SeverityMild:       1,
	SeverityModerate:   3,
	SeveritySevere:     5,
	SeverityUrgent:     10,
	SeverityVeryUrgent: 20,
}

// PriorityValue returns the queue ordering value for the level.
func (l SeverityLevel) PriorityValue() int {
	return severityPriority[l]
}

// Classify scores one questionnaire. It is total and deterministic over the
// declared answer domain: urgency score in [0, 65], exactly one level, and
// the level's fixed priority value. Answers outside the enumerated sets are
// a caller contract violation; unknown values contribute zero weight.
func Classify(a Answers) (score int, level SeverityLevel, priority int) {
	score = consciousnessWeights[a.Consciousness] +
		respirationWeights[a.Respiration] +
		painWeights[a.PainBleeding] +
		traumaWeights[a.Trauma]

	switch {
	case score >= 35:
		level = SeverityVeryUrgent
	case score >= 20:
		level = SeverityUrgent
	case score >= 10:
		level = SeveritySevere
	case score >= 3:
		level = SeverityModerate
	default:
		level = SeverityMild
	}

	return score, level, severityPriority[level]
}

// ParseConsciousness parses a questionnaire answer string.
func ParseConsciousness(s string) (Consciousness, error) {
	v := Consciousness(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := consciousnessWeights[v]; !ok {
		return "", fmt.Errorf("unknown consciousness answer %q", s)
	}
	return v, nil
}

// ParseRespiration parses a questionnaire answer string.
func ParseRespiration(s string) (Respiration, error) {
	v := Respiration(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := respirationWeights[v]; !ok {
		return "", fmt.Errorf("unknown respiration answer %q", s)
	}
	return v, nil
}

// ParsePainBleeding parses a questionnaire answer string.
func ParsePainBleeding(s string) (PainBleeding, error) {
	v := PainBleeding(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := painWeights[v]; !ok {
		return "", fmt.Errorf("unknown pain/bleeding answer %q", s)
	}
	return v, nil
}

// ParseTrauma parses a questionnaire answer string.
func ParseTrauma(s string) (Trauma, error) {
	v := Trauma(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := traumaWeights[v]; !ok {
		return "", fmt.Errorf("unknown trauma answer %q", s)
	}
	return v, nil
}
