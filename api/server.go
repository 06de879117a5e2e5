// Implements the HTTP operator surface. Each endpoint maps directly to one
// session operation: submit diagnosis, select mode, start treatment,
// request route, inspect the waiting list.

package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emtriage/emtriage/roadnet"
	"github.com/emtriage/emtriage/triage"
)

// routeTimeout bounds one shortest-path query. The session contract is
// "possibly slow, never indefinitely blocking"; the deadline enforces that
// for large map extracts.
const routeTimeout = 30 * time.Second

// Server serves one operator's session over HTTP. The session itself is
// single-writer by contract, so the server serializes access with a mutex
// rather than pushing locking into the triage package.
type Server struct {
	mu      sync.Mutex
	session *triage.Session
	router  *gin.Engine
}

// NewServer wires the operator endpoints around an existing session.
func NewServer(session *triage.Session) *Server {
	s := &Server{
		session: session,
		router:  gin.Default(),
	}

	s.router.POST("/patients", s.submitDiagnosis)
	s.router.GET("/queue", s.waitingList)
	s.router.PUT("/queue/mode", s.selectMode)
	s.router.POST("/treatment/next", s.startTreatment)
	s.router.GET("/treatment", s.inTreatment)
	s.router.DELETE("/treatment", s.clearTreatment)
	s.router.GET("/treatment/route", s.requestRoute)

	return s
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run blocks serving HTTP on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// diagnosisRequest is the intake form payload. Answers arrive as strings
// and are parsed into the questionnaire enums; origin is optional but when
// present both coordinates are required.
type diagnosisRequest struct {
	Name          string               `json:"name"`
	Consciousness string               `json:"consciousness"`
	Respiration   string               `json:"respiration"`
	PainBleeding  string               `json:"pain_bleeding"`
	Trauma        string               `json:"trauma"`
	Origin        *roadnet.Coordinates `json:"origin"`
}

func (s *Server) submitDiagnosis(c *gin.Context) {
	var req diagnosisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	answers, err := parseAnswers(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	patient, err := s.session.SubmitDiagnosis(req.Name, answers, req.Origin)
	s.mu.Unlock()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, patient)
}

func parseAnswers(req diagnosisRequest) (triage.Answers, error) {
	var a triage.Answers
	var err error
	if a.Consciousness, err = triage.ParseConsciousness(req.Consciousness); err != nil {
		return a, err
	}
	if a.Respiration, err = triage.ParseRespiration(req.Respiration); err != nil {
		return a, err
	}
	if a.PainBleeding, err = triage.ParsePainBleeding(req.PainBleeding); err != nil {
		return a, err
	}
	if a.Trauma, err = triage.ParseTrauma(req.Trauma); err != nil {
		return a, err
	}
	return a, nil
}

func (s *Server) waitingList(c *gin.Context) {
	s.mu.Lock()
	list := s.session.WaitingList()
	mode := s.session.Mode()
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"mode": mode, "waiting": list})
}

type modeRequest struct {
	Mode string `json:"mode"`
}

func (s *Server) selectMode(c *gin.Context) {
	var req modeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	mode, err := triage.ParseQueueMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	s.session.SelectMode(mode)
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"mode": mode})
}

func (s *Server) startTreatment(c *gin.Context) {
	s.mu.Lock()
	patient, err := s.session.StartTreatment()
	s.mu.Unlock()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, patient)
}

func (s *Server) inTreatment(c *gin.Context) {
	s.mu.Lock()
	patient := s.session.InTreatment()
	s.mu.Unlock()
	if patient == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no patient in treatment"})
		return
	}

	c.JSON(http.StatusOK, patient)
}

func (s *Server) clearTreatment(c *gin.Context) {
	s.mu.Lock()
	s.session.ClearTreatment()
	s.mu.Unlock()

	c.Status(http.StatusNoContent)
}

func (s *Server) requestRoute(c *gin.Context) {
	ctx, cancel := timeoutContext(c)
	defer cancel()

	s.mu.Lock()
	result, err := s.session.RequestRoute(ctx)
	s.mu.Unlock()
	if err != nil {
		c.JSON(routeErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func timeoutContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), routeTimeout)
}

// routeErrorStatus keeps each route failure distinguishable to the operator.
func routeErrorStatus(err error) int {
	switch {
	case errors.Is(err, triage.ErrNoPatient):
		return http.StatusNotFound
	case errors.Is(err, triage.ErrMissingCoordinates):
		return http.StatusUnprocessableEntity
	case errors.Is(err, roadnet.ErrGraphUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, roadnet.ErrNoPath):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
