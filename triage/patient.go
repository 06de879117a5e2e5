// Defines the PatientRecord struct that models one intake through the
// triage pipeline. Tracks identity, questionnaire answers, derived severity,
// optional origin coordinates, and lifecycle state.

package triage

import (
	"fmt"

	"github.com/emtriage/emtriage/roadnet"
)

// PatientState represents the lifecycle state of a patient record.
type PatientState string

const (
	StateQueued      PatientState = "queued"
	StateInTreatment PatientState = "in-treatment"
)

// PatientRecord is one patient's intake. Fields are fixed at diagnosis
// submission and not mutated while queued; only State changes, when the
// patient is pulled for treatment.
type PatientRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Answers Answers `json:"-"`

	UrgencyScore  int           `json:"urgency_score"`
	Severity      SeverityLevel `json:"severity"`
	PriorityValue int           `json:"priority_value"`

	// Origin is where the patient is picked up from. Nil when no coordinates
	// were supplied at submission; latitude and longitude are always both
	// present or both absent.
	Origin *roadnet.Coordinates `json:"origin,omitempty"`

	State PatientState `json:"state"`
}

// This method returns a human-readable string representation of a PatientRecord.
func (p PatientRecord) String() string {
	return fmt.Sprintf("Patient: (ID: %s, Name: %s, Severity: %s, Priority: %d, State: %s)",
		p.ID, p.Name, p.Severity, p.PriorityValue, p.State)
}
