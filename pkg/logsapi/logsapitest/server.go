// Package logsapitest provides an in-memory fake of the log REST API for
// tests, in the spirit of net/http/httptest.
package logsapitest

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"looking-glass/pkg/logsapi"
	"looking-glass/pkg/response"
)

// CreateMode selects how POST /api/logs answers a successful create.
type CreateMode int

const (
	// CreateEcho answers 201 with the created log as JSON.
	CreateEcho CreateMode = iota
	// CreateEmpty answers 201 with no body.
	CreateEmpty
	// CreateGarbage answers 201 with a plain text body.
	CreateGarbage
	// CreateNoID answers 201 with a JSON message that is not a log.
	CreateNoID
)

// Call records one request received by the fake.
type Call struct {
	Method string
	Path   string
}

func (c Call) String() string { return c.Method + " " + c.Path }

// Server is a fake log API backed by an ordered in-memory collection.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	logs       []logsapi.Log
	calls      []Call
	failures   map[string][]int
	createMode CreateMode
	echoUpdate bool
	nextID     string
	now        func() time.Time
}

// NewServer starts a fake and registers its shutdown with tb.Cleanup.
func NewServer(tb testing.TB) *Server {
	tb.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		failures: make(map[string][]int),
		now:      time.Now,
	}
	s.Server = httptest.NewServer(s.routes())
	tb.Cleanup(s.Close)
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.record)

	r.GET("/api/", s.info)
	logs := r.Group("/api/logs")
	{
		logs.GET("", s.list)
		logs.POST("", s.create)
		logs.GET("/:id", s.detail)
		logs.PUT("/:id", s.update)
		logs.DELETE("/:id", s.delete)
	}
	return r
}

// Seed replaces the collection. Logs without an id get a fresh one.
func (s *Server) Seed(logs ...logsapi.Log) []logsapi.Log {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs = make([]logsapi.Log, 0, len(logs))
	for _, l := range logs {
		if l.ID == "" {
			l.ID = uuid.NewString()
		}
		if l.CreatedAt == "" {
			l.CreatedAt = s.timestamp()
			l.UpdatedAt = l.CreatedAt
		}
		s.logs = append(s.logs, cloneLog(l))
	}
	return s.snapshot()
}

// Logs returns a copy of the server-side collection.
func (s *Server) Logs() []logsapi.Log {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Calls returns every request seen so far.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CallCount counts requests with the given method.
func (s *Server) CallCount(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// ResetCalls forgets recorded requests.
func (s *Server) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

// FailNext makes the next request with method answer status instead of
// being served. Multiple calls queue up.
func (s *Server) FailNext(method string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method] = append(s.failures[method], status)
}

// SetCreateMode changes how successful creates are answered.
func (s *Server) SetCreateMode(m CreateMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createMode = m
}

// SetNextID makes the next create use id instead of a fresh uuid, even if
// the id is already taken.
func (s *Server) SetNextID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID = id
}

// SetUpdateEcho makes PUT answer 200 with the stored log instead of 204.
func (s *Server) SetUpdateEcho(echo bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.echoUpdate = echo
}

// SetClock overrides the timestamp source.
func (s *Server) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Server) record(c *gin.Context) {
	s.mu.Lock()
	s.calls = append(s.calls, Call{Method: c.Request.Method, Path: c.Request.URL.Path})
	var status int
	if queue := s.failures[c.Request.Method]; len(queue) > 0 {
		status = queue[0]
		s.failures[c.Request.Method] = queue[1:]
	}
	s.mu.Unlock()

	if status != 0 {
		response.Error(c, status, fmt.Errorf("injected failure %d", status))
		return
	}
	c.Next()
}

func (s *Server) info(c *gin.Context) {
	response.OK(c, response.InfoBody{
		Name:        "LookingGlassAPI",
		Version:     "1.0.2",
		Description: "A minimalist daily log tracker. Create, read, update, and delete what you did each day.",
		Status:      "OK",
	})
}

func (s *Server) list(c *gin.Context) {
	response.OK(c, s.Logs())
}

func (s *Server) detail(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	idx := s.indexOf(id)
	var l logsapi.Log
	if idx >= 0 {
		l = cloneLog(s.logs[idx])
	}
	s.mu.Unlock()

	if idx < 0 {
		response.NotFound(c, fmt.Errorf("No log found for ID %s", id))
		return
	}
	response.OK(c, l)
}

func (s *Server) create(c *gin.Context) {
	var req logsapi.LogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, errors.New("Request body must be JSON"))
		return
	}

	s.mu.Lock()
	ts := s.timestamp()
	id := s.nextID
	s.nextID = ""
	if id == "" {
		id = uuid.NewString()
	}
	l := logsapi.Log{
		ID:        id,
		Title:     req.Title,
		Entries:   req.Entries,
		LogDate:   req.LogDate,
		Mood:      req.Mood,
		Tags:      append([]string{}, req.Tags...),
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if l.LogDate == "" {
		l.LogDate = s.now().Format("2006-01-02")
	}
	s.logs = append([]logsapi.Log{l}, s.logs...)
	mode := s.createMode
	s.mu.Unlock()

	switch mode {
	case CreateEmpty:
		response.NoContent(c, http.StatusCreated)
	case CreateGarbage:
		c.String(http.StatusCreated, "Log %s created successfully", l.ID)
	case CreateNoID:
		response.Created(c, gin.H{"message": fmt.Sprintf("Log %s created successfully", l.ID)})
	default:
		response.Created(c, l)
	}
}

func (s *Server) update(c *gin.Context) {
	id := c.Param("id")

	var req logsapi.LogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, errors.New("Request body must be JSON"))
		return
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		response.NotFound(c, fmt.Errorf("No log found with ID %s", id))
		return
	}
	l := &s.logs[idx]
	l.Title = req.Title
	l.Entries = req.Entries
	l.Mood = req.Mood
	l.Tags = append([]string{}, req.Tags...)
	if req.LogDate != "" {
		l.LogDate = req.LogDate
	}
	l.UpdatedAt = s.timestamp()
	updated := cloneLog(*l)
	echo := s.echoUpdate
	s.mu.Unlock()

	if echo {
		response.OK(c, updated)
		return
	}
	response.NoContent(c, http.StatusNoContent)
}

func (s *Server) delete(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx >= 0 {
		s.logs = append(s.logs[:idx], s.logs[idx+1:]...)
	}
	s.mu.Unlock()

	if idx < 0 {
		response.NotFound(c, fmt.Errorf("No log found for ID %s", id))
		return
	}
	response.NoContent(c, http.StatusNoContent)
}

// indexOf must be called with mu held.
func (s *Server) indexOf(id string) int {
	for i, l := range s.logs {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// snapshot must be called with mu held.
func (s *Server) snapshot() []logsapi.Log {
	out := make([]logsapi.Log, len(s.logs))
	for i, l := range s.logs {
		out[i] = cloneLog(l)
	}
	return out
}

// timestamp must be called with mu held.
func (s *Server) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func cloneLog(l logsapi.Log) logsapi.Log {
	l.Tags = append([]string{}, l.Tags...)
	return l
}
