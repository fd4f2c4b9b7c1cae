package engine

import (
	"sort"
	"strings"
)

// Dashboard read models, computed over the full snapshot. The landing
// page ignores report filters.

type KPI struct {
	AllTasks   int `json:"allTasks"`
	InProgress int `json:"inProgress"`
	Stuck      int `json:"stuck"`
	Done       int `json:"done"`
}

type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type DashboardSummary struct {
	KPI             KPI         `json:"kpi"`
	ByStatus        []NameCount `json:"byStatus"`
	ByUser          []NameCount `json:"byUser"`
	OverdueByStatus []NameCount `json:"overdueByStatus"`
	ByPriority      []NameCount `json:"byPriority"`
}

// Status families are matched by case-insensitive substring because the
// source data holds free-text variants ("Completed", "done", "Closed ").
const (
	familyCompleted  = "Completed"
	familyNotStarted = "Not Started"
	familyInProgress = "In Progress"
	familyStuck      = "Stuck"
	familyOther      = "Other"
)

func statusFamily(status string) string {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "completed"), strings.Contains(s, "done"), strings.Contains(s, "closed"):
		return familyCompleted
	case strings.Contains(s, "not started"):
		return familyNotStarted
	case strings.Contains(s, "in progress"), strings.Contains(s, "inprogress"):
		return familyInProgress
	case strings.Contains(s, "stuck"), strings.Contains(s, "blocked"):
		return familyStuck
	default:
		return familyOther
	}
}

// priorityOrder ranks the known priority values; anything else trails in
// first-seen order.
var priorityOrder = []string{"V High", "High", "Medium", "Low"}

// BuildDashboard computes the landing-page summary. today is the canonical
// date overdue deadlines are compared against (deadline strictly before
// today).
func BuildDashboard(records []NormalizedRecord, today string) DashboardSummary {
	var sum DashboardSummary
	sum.KPI.AllTasks = len(records)

	statusCounts := newCounter()
	userCounts := newCounter()
	priorityCounts := newCounter()
	overdue := newCounter()
	for _, f := range []string{familyCompleted, familyNotStarted, familyInProgress, familyStuck, familyOther} {
		overdue.touch(f)
	}

	for _, r := range records {
		switch statusFamily(r.Status) {
		case familyCompleted:
			sum.KPI.Done++
		case familyInProgress:
			sum.KPI.InProgress++
		case familyStuck:
			sum.KPI.Stuck++
		}

		status := r.Status
		if status == "" {
			status = UnknownLabel
		}
		statusCounts.add(status)

		user := r.Owner
		if user == "" {
			user = "Unassigned"
		}
		userCounts.add(user)

		priority := r.Priority
		if priority == "" {
			priority = "Unspecified"
		}
		priorityCounts.add(priority)

		if r.Deadline != "" && r.Deadline < today {
			overdue.add(statusFamily(r.Status))
		}
	}

	sum.ByStatus = statusCounts.list()
	sum.OverdueByStatus = overdue.list()

	sum.ByUser = userCounts.list()
	sort.SliceStable(sum.ByUser, func(i, j int) bool { return sum.ByUser[i].Count > sum.ByUser[j].Count })

	sum.ByPriority = priorityCounts.list()
	sort.SliceStable(sum.ByPriority, func(i, j int) bool {
		return priorityRank(sum.ByPriority[i].Name) < priorityRank(sum.ByPriority[j].Name)
	})

	return sum
}

func priorityRank(name string) int {
	for i, p := range priorityOrder {
		if p == name {
			return i
		}
	}
	return len(priorityOrder)
}

// counter tallies names preserving first-seen order.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) touch(name string) {
	if _, ok := c.counts[name]; !ok {
		c.counts[name] = 0
		c.order = append(c.order, name)
	}
}

func (c *counter) add(name string) {
	c.touch(name)
	c.counts[name]++
}

func (c *counter) list() []NameCount {
	out := make([]NameCount, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, NameCount{Name: name, Count: c.counts[name]})
	}
	return out
}
