package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"horactl/pkg/lookup"
	"horactl/pkg/timetable"
)

// ProfessorResponse is a professor's week
type ProfessorResponse struct {
	Name    string                 `json:"name"`
	Classes []timetable.IndexEntry `json:"classes"`
}

// NowResponse tells where a professor is at the server's current time
type NowResponse struct {
	Name   string            `json:"name"`
	At     time.Time         `json:"at"`
	Result *lookup.NowResult `json:"result"`
}

// GET /api/entries
func (s *Server) listEntries(c *gin.Context) (any, *Error) {
	if s.sched.Entries == nil {
		return []timetable.Entry{}, nil
	}
	return s.sched.Entries, nil
}

// GET /api/rooms
func (s *Server) listRooms(c *gin.Context) (any, *Error) {
	rooms := lookup.Rooms(s.sched.Entries)
	if rooms == nil {
		rooms = []string{}
	}
	return rooms, nil
}

// GET /api/professors
func (s *Server) listProfessors(c *gin.Context) (any, *Error) {
	return lookup.Professors(s.sched.Index), nil
}

// GET /api/professors/:name
func (s *Server) getProfessor(c *gin.Context) (any, *Error) {
	name := timetable.NormalizeName(c.Param("name"))
	classes, ok := s.sched.Index.Lookup(name)
	if !ok {
		return nil, &Error{Code: http.StatusNotFound, Message: fmt.Sprintf("professor %q not found", name)}
	}
	return ProfessorResponse{Name: name, Classes: classes}, nil
}

// GET /api/professors/:name/now
func (s *Server) getProfessorNow(c *gin.Context) (any, *Error) {
	name := timetable.NormalizeName(c.Param("name"))
	if _, ok := s.sched.Index.Lookup(name); !ok {
		return nil, &Error{Code: http.StatusNotFound, Message: fmt.Sprintf("professor %q not found", name)}
	}
	now := s.now()
	return NowResponse{Name: name, At: now, Result: lookup.FindNow(s.sched.Index, name, now)}, nil
}

// GET /api/search?date=&day=&period=&professor=&room=
func (s *Server) search(c *gin.Context) (any, *Error) {
	q := lookup.Query{
		Professor: c.Query("professor"),
		Room:      c.Query("room"),
	}

	if v := c.Query("day"); v != "" {
		day, ok := timetable.ParseDay(v)
		if !ok {
			return nil, &Error{Code: http.StatusBadRequest, Message: fmt.Sprintf("unknown day %q", v)}
		}
		q.Day = day
	}

	if v := c.Query("date"); v != "" {
		date, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, &Error{Code: http.StatusBadRequest, Message: "date must be formatted as YYYY-MM-DD"}
		}
		q.Date = date
	}
	if v := c.Query("period"); v != "" {
		p, ok := timetable.ParsePeriod(v)
		if !ok {
			return nil, &Error{Code: http.StatusBadRequest, Message: fmt.Sprintf("unknown period %q", v)}
		}
		q.Period = p
	}

	results := lookup.Search(s.sched.Index, q)
	if results == nil {
		results = []lookup.Result{}
	}
	return results, nil
}
