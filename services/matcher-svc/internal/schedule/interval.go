// Package schedule implements a greedy appointment scheduler: a lightweight
// complement to the flow-based matcher for time-bounded requests.
package schedule

import (
	"fmt"
	"sort"
)

// Interval is a half-open time range in whole hours.
type Interval struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Covers reports whether the interval fully contains other.
func (iv Interval) Covers(other Interval) bool {
	return iv.Start <= other.Start && iv.End >= other.End
}

// Valid reports whether the interval is well formed.
func (iv Interval) Valid() bool {
	return iv.Start < iv.End
}

// String formats the interval as "9-12".
func (iv Interval) String() string {
	return fmt.Sprintf("%d-%d", iv.Start, iv.End)
}

// Staff is a staff member with working hours and a client allow-list.
type Staff struct {
	Name           string          `json:"name" yaml:"name"`
	Available      bool            `json:"available" yaml:"available"`
	AvailableHours []Interval      `json:"available_hours" yaml:"available_hours"`
	AllowedClients map[string]bool `json:"allowed_clients" yaml:"allowed_clients"`
}

// CanCover reports whether any of the staff's availability intervals fully
// contains the appointment.
func (s *Staff) CanCover(appointment Interval) bool {
	for _, hours := range s.AvailableHours {
		if hours.Covers(appointment) {
			return true
		}
	}
	return false
}

// Client is a client with requested appointment slots.
type Client struct {
	Name         string     `json:"name" yaml:"name"`
	Appointments []Interval `json:"appointments" yaml:"appointments"`
}

// Assignment records who serves one appointment. Staff is empty when no
// staff member could cover the slot.
type Assignment struct {
	Appointment Interval `json:"appointment"`
	Staff       string   `json:"staff,omitempty"`
}

// Schedule maps client names to their appointment assignments.
type Schedule map[string][]Assignment

// MatchStaffToClients assigns each appointment of each client to the first
// staff member (in input order) who is available, allowed for the client,
// and whose hours cover the slot.
//
// The assignment is greedy per appointment: staff are not exclusive across
// slots, so the same staff member can serve several appointments. Unfilled
// slots are reported with an empty Staff name, never dropped.
func MatchStaffToClients(staff []*Staff, clients []*Client) Schedule {
	schedule := make(Schedule, len(clients))

	for _, client := range clients {
		assignments := make([]Assignment, 0, len(client.Appointments))

		for _, appointment := range client.Appointments {
			assigned := ""

			for _, s := range staff {
				if !s.Available {
					continue
				}
				if !s.AllowedClients[client.Name] {
					continue
				}
				if s.CanCover(appointment) {
					assigned = s.Name
					break
				}
			}

			assignments = append(assignments, Assignment{
				Appointment: appointment,
				Staff:       assigned,
			})
		}

		schedule[client.Name] = assignments
	}

	return schedule
}

// UnfilledSlots returns the appointments no staff member could cover,
// sorted by client name for deterministic output.
func (s Schedule) UnfilledSlots() map[string][]Interval {
	unfilled := make(map[string][]Interval)

	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, a := range s[name] {
			if a.Staff == "" {
				unfilled[name] = append(unfilled[name], a.Appointment)
			}
		}
	}
	return unfilled
}

// FilledCount returns the number of assigned appointments.
func (s Schedule) FilledCount() int {
	count := 0
	for _, assignments := range s {
		for _, a := range assignments {
			if a.Staff != "" {
				count++
			}
		}
	}
	return count
}
