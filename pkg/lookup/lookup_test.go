package lookup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"horactl/pkg/timetable"
)

func testSchedule() *timetable.Schedule {
	return timetable.Parse([]timetable.RawBlock{
		timetable.NewBlock(timetable.Morning, "Sala 1  Sala 2\nSEG\n08:00  Cálculo (Ana)  Física (Rui)\n10:00  Álgebra (Ana)  Livre\nQUA\n08:00  Química (Rui)  Cálculo (Ana)"),
		timetable.NewBlock(timetable.Evening, "Sala 1  Lab A\nSEG\n19:00  Redes (Ana)  Banco de Dados (Rui)"),
	})
}

// 2026-03-02 is a Monday
func monday(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func TestProfessorsAndRooms(t *testing.T) {
	sched := testSchedule()

	assert.Equal(t, []string{"ANA", "RUI"}, Professors(sched.Index))
	assert.Equal(t, []string{"Lab A", "Sala 1", "Sala 2"}, Rooms(sched.Entries))
}

func TestCurrentPeriod(t *testing.T) {
	tests := []struct {
		hour, min int
		want      timetable.Period
		ok        bool
	}{
		{6, 59, "", false},
		{7, 0, timetable.Morning, true},
		{12, 20, "", false},
		{12, 40, timetable.Afternoon, true},
		{18, 30, "", false},
		{21, 0, timetable.Evening, true},
		{23, 59, "", false},
	}

	for _, tt := range tests {
		got, ok := CurrentPeriod(monday(tt.hour, tt.min))
		assert.Equal(t, tt.want, got, "%02d:%02d", tt.hour, tt.min)
		assert.Equal(t, tt.ok, ok, "%02d:%02d", tt.hour, tt.min)
	}
}

func TestFindNow(t *testing.T) {
	idx := testSchedule().Index

	res := FindNow(idx, "ana", monday(8, 30))
	if assert.NotNil(t, res) {
		assert.Equal(t, KindNow, res.Kind)
		assert.Equal(t, "Cálculo", res.Entry.Subject)
	}

	res = FindNow(idx, "Ana", monday(9, 15))
	if assert.NotNil(t, res) {
		assert.Equal(t, KindNext, res.Kind)
		assert.Equal(t, "10:00", res.Entry.Time)
	}

	res = FindNow(idx, "ANA", monday(22, 0))
	if assert.NotNil(t, res) {
		assert.Equal(t, KindLast, res.Kind)
		assert.Equal(t, "Redes", res.Entry.Subject)
	}

	// Tuesday: nothing scheduled
	assert.Nil(t, FindNow(idx, "ANA", monday(8, 0).AddDate(0, 0, 1)))
	assert.Nil(t, FindNow(idx, "NOBODY", monday(8, 0)))
}

func TestSearch(t *testing.T) {
	idx := testSchedule().Index

	all := Search(idx, Query{})
	assert.Len(t, all, 7)
	assert.Equal(t, timetable.Monday, all[0].Day)
	assert.Equal(t, "08:00", all[0].Time)
	assert.Equal(t, "ANA", all[0].Professor, "same slot keeps name order")
	assert.Equal(t, "RUI", all[1].Professor)

	wed := Search(idx, Query{Date: monday(0, 0).AddDate(0, 0, 2)})
	assert.Len(t, wed, 2)
	for _, r := range wed {
		assert.Equal(t, timetable.Wednesday, r.Day)
	}

	evening := Search(idx, Query{Period: timetable.Evening, Professor: "rui"})
	if assert.Len(t, evening, 1) {
		assert.Equal(t, "Lab A", evening[0].Room)
		assert.Equal(t, "Banco de Dados", evening[0].Subject)
	}

	room := Search(idx, Query{Room: "Sala 2", Day: timetable.Monday})
	if assert.Len(t, room, 1) {
		assert.Equal(t, "RUI", room[0].Professor)
	}

	assert.Empty(t, Search(idx, Query{Day: timetable.Friday}))
}
