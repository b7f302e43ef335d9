// Package calendar answers "is this date a workday" from year-keyed
// holiday tables with an override-workday set for mandated weekend
// workdays. Years without data degrade to plain weekend logic.
package calendar

import (
	"embed"
	"encoding/json"
	"fmt"
	"time"
)

//go:embed data/*.json
var dataFiles embed.FS

// Reason codes returned alongside the workday verdict.
const (
	ReasonWorkday         = "workday"
	ReasonWeekend         = "weekend"
	ReasonHoliday         = "holiday"
	ReasonOverrideWorkday = "override-workday"
)

// Result is the verdict for one date.
type Result struct {
	IsWorkday bool
	Reason    string
}

// YearData is the on-disk shape of one year's table. Dates are ISO
// yyyy-mm-dd strings.
type YearData struct {
	Year     int      `json:"year"`
	Holidays []string `json:"holidays"`
	Workdays []string `json:"workdays"`
	Source   string   `json:"source"`
}

type yearTable struct {
	holidays map[string]struct{}
	workdays map[string]struct{}
}

// Calendar holds the loaded tables. It is immutable after construction.
type Calendar struct {
	years map[int]yearTable
}

// New builds a calendar from explicit year tables. A date listed in both
// sets is treated as a workday, since the override set is checked first.
func New(years ...YearData) *Calendar {
	c := &Calendar{years: make(map[int]yearTable, len(years))}
	for _, y := range years {
		t := yearTable{
			holidays: make(map[string]struct{}, len(y.Holidays)),
			workdays: make(map[string]struct{}, len(y.Workdays)),
		}
		for _, d := range y.Holidays {
			t.holidays[d] = struct{}{}
		}
		for _, d := range y.Workdays {
			t.workdays[d] = struct{}{}
		}
		c.years[y.Year] = t
	}
	return c
}

// Load builds a calendar from the embedded year tables.
func Load() (*Calendar, error) {
	entries, err := dataFiles.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar data: %w", err)
	}

	var years []YearData
	for _, e := range entries {
		raw, err := dataFiles.ReadFile("data/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", e.Name(), err)
		}
		var y YearData
		if err := json.Unmarshal(raw, &y); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", e.Name(), err)
		}
		years = append(years, y)
	}
	return New(years...), nil
}

// IsWorkday evaluates the given date. Precedence: override-workday, then
// holiday, then weekend; anything else is a plain workday.
func (c *Calendar) IsWorkday(date time.Time) Result {
	key := date.Format("2006-01-02")

	if t, ok := c.years[date.Year()]; ok {
		if _, ok := t.workdays[key]; ok {
			return Result{IsWorkday: true, Reason: ReasonOverrideWorkday}
		}
		if _, ok := t.holidays[key]; ok {
			return Result{IsWorkday: false, Reason: ReasonHoliday}
		}
	}

	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return Result{IsWorkday: false, Reason: ReasonWeekend}
	}
	return Result{IsWorkday: true, Reason: ReasonWorkday}
}
