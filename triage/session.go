// triage/session.go

package triage

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/emtriage/emtriage/roadnet"
)

var (
	// ErrEmptyName rejects a diagnosis submission with a blank patient name
	// before anything is classified or enqueued.
	ErrEmptyName = errors.New("patient name must not be empty")

	// ErrQueueEmpty is reported when treatment is started with nobody
	// waiting. Callers branch on it (the in-treatment slot is cleared).
	ErrQueueEmpty = errors.New("triage queue is empty")

	// ErrNoPatient is reported when a route is requested with no patient in
	// treatment.
	ErrNoPatient = errors.New("no patient in treatment")

	// ErrMissingCoordinates is reported when the in-treatment patient was
	// submitted without origin coordinates. Checked before the route finder
	// is ever invoked.
	ErrMissingCoordinates = errors.New("patient has no origin coordinates")
)

// Session is the core object that owns one operating session's mutable
// state: the waiting queue, the active tie-break mode, the singleton
// in-treatment slot, and the read-only road graph. It is created at session
// start and discarded at session end; nothing survives a restart.
// Single-operator by contract, so no internal locking.
type Session struct {
	queue       *Queue
	mode        QueueMode
	inTreatment *PatientRecord

	// graph is supplied by an external collaborator and treated as
	// immutable once set. May arrive after the session starts.
	graph    *roadnet.RoadGraph
	hospital roadnet.Coordinates
}

// NewSession creates a session for the given fixed hospital destination.
// defaultMode is the tie-break convention until SelectMode changes it.
func NewSession(hospital roadnet.Coordinates, defaultMode QueueMode) *Session {
	if !ValidQueueModes[defaultMode] {
		defaultMode = ModeFIFO
	}
	return &Session{
		queue:    NewQueue(),
		mode:     defaultMode,
		hospital: hospital,
	}
}

// SetRoadGraph hands the session its road network. The graph supplier may
// deliver after startup; until then route requests report graph-unavailable.
func (s *Session) SetRoadGraph(g *roadnet.RoadGraph) {
	s.graph = g
}

// Hospital returns the fixed destination coordinates.
func (s *Session) Hospital() roadnet.Coordinates {
	return s.hospital
}

// Mode returns the tie-break mode applied to future insertions.
func (s *Session) Mode() QueueMode {
	return s.mode
}

// SelectMode switches the tie-break convention for future insertions.
// Entries already queued keep the convention they were inserted under.
func (s *Session) SelectMode(mode QueueMode) {
	s.mode = mode
}

// SubmitDiagnosis classifies a completed questionnaire and enqueues the
// resulting patient record under the currently selected mode. origin may be
// nil when no pickup coordinates are known yet. A blank name is rejected
// with ErrEmptyName before any state is touched.
func (s *Session) SubmitDiagnosis(name string, answers Answers, origin *roadnet.Coordinates) (*PatientRecord, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	score, level, priority := Classify(answers)
	p := &PatientRecord{
		ID:            uuid.NewString(),
		Name:          name,
		Answers:       answers,
		UrgencyScore:  score,
		Severity:      level,
		PriorityValue: priority,
		Origin:        origin,
		State:         StateQueued,
	}

	s.queue.Insert(p, priority, s.mode)
	logrus.Infof("queued patient %s (%s, priority %d, mode %s)", p.Name, p.Severity, priority, s.mode)
	return p, nil
}

// StartTreatment pops the highest-priority patient into the in-treatment
// slot, overwriting whoever was there. On an empty queue the slot is
// cleared and ErrQueueEmpty is returned.
func (s *Session) StartTreatment() (*PatientRecord, error) {
	p, _, ok := s.queue.PopHighest()
	if !ok {
		s.inTreatment = nil
		return nil, ErrQueueEmpty
	}
	p.State = StateInTreatment
	s.inTreatment = p
	logrus.Infof("treatment started for %s (%s, priority %d)", p.Name, p.Severity, p.PriorityValue)
	return p, nil
}

// InTreatment returns the patient currently in treatment, or nil.
func (s *Session) InTreatment() *PatientRecord {
	return s.inTreatment
}

// ClearTreatment empties the in-treatment slot.
func (s *Session) ClearTreatment() {
	s.inTreatment = nil
}

// WaitingList returns the full queue in pop order, for display and audit.
func (s *Session) WaitingList() []WaitingPatient {
	return s.queue.SnapshotSorted()
}

// QueueEmpty reports whether anyone is waiting.
func (s *Session) QueueEmpty() bool {
	return s.queue.IsEmpty()
}

// RequestRoute computes the shortest drivable route from the in-treatment
// patient's origin to the hospital. Each failure is distinct and locally
// recoverable: no patient in treatment, patient without coordinates, graph
// not yet supplied, or origin and hospital in disconnected components.
func (s *Session) RequestRoute(ctx context.Context) (*roadnet.RouteResult, error) {
	if s.inTreatment == nil {
		return nil, ErrNoPatient
	}
	if s.inTreatment.Origin == nil {
		return nil, ErrMissingCoordinates
	}
	return roadnet.ComputeRoute(ctx, s.graph, *s.inTreatment.Origin, s.hospital)
}
