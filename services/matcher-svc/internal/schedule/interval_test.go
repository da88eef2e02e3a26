package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStaff() []*Staff {
	return []*Staff{
		{
			Name:           "Alice",
			Available:      true,
			AvailableHours: []Interval{{9, 12}, {14, 18}},
			AllowedClients: map[string]bool{"Bob": true, "Diana": true},
		},
		{
			Name:           "Charlie",
			Available:      true,
			AvailableHours: []Interval{{8, 11}, {13, 17}},
			AllowedClients: map[string]bool{"Bob": true},
		},
		{
			Name:           "Eve",
			Available:      false,
			AllowedClients: map[string]bool{"Diana": true},
		},
	}
}

func testClients() []*Client {
	return []*Client{
		{Name: "Bob", Appointments: []Interval{{9, 10}, {15, 16}}},
		{Name: "Diana", Appointments: []Interval{{10, 11}, {16, 17}}},
	}
}

func TestInterval_Covers(t *testing.T) {
	tests := []struct {
		name        string
		hours       Interval
		appointment Interval
		want        bool
	}{
		{name: "full cover", hours: Interval{9, 12}, appointment: Interval{9, 10}, want: true},
		{name: "exact match", hours: Interval{9, 10}, appointment: Interval{9, 10}, want: true},
		{name: "starts too late", hours: Interval{10, 12}, appointment: Interval{9, 10}, want: false},
		{name: "ends too early", hours: Interval{9, 10}, appointment: Interval{9, 11}, want: false},
		{name: "disjoint", hours: Interval{14, 18}, appointment: Interval{9, 10}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hours.Covers(tt.appointment))
		})
	}
}

func TestStaff_CanCover(t *testing.T) {
	alice := testStaff()[0]

	assert.True(t, alice.CanCover(Interval{9, 10}))
	assert.True(t, alice.CanCover(Interval{15, 16}))
	assert.False(t, alice.CanCover(Interval{12, 14}))
	assert.False(t, alice.CanCover(Interval{11, 15}))
}

func TestMatchStaffToClients(t *testing.T) {
	schedule := MatchStaffToClients(testStaff(), testClients())

	require.Len(t, schedule, 2)

	// Charlie is checked after Alice; Alice covers both of Bob's slots.
	bob := schedule["Bob"]
	require.Len(t, bob, 2)
	assert.Equal(t, "Alice", bob[0].Staff)
	assert.Equal(t, "Alice", bob[1].Staff)

	// Eve is unavailable; only Alice may serve Diana.
	diana := schedule["Diana"]
	require.Len(t, diana, 2)
	assert.Equal(t, "Alice", diana[0].Staff)
	assert.Equal(t, "Alice", diana[1].Staff)
}

func TestMatchStaffToClients_FirstEligibleWins(t *testing.T) {
	staff := testStaff()
	// Make Alice ineligible for Bob: Charlie becomes the first match.
	staff[0].AllowedClients = map[string]bool{"Diana": true}

	schedule := MatchStaffToClients(staff, testClients())
	assert.Equal(t, "Charlie", schedule["Bob"][0].Staff)
}

func TestMatchStaffToClients_UnfilledSlot(t *testing.T) {
	clients := []*Client{
		{Name: "Bob", Appointments: []Interval{{6, 7}}},
	}

	schedule := MatchStaffToClients(testStaff(), clients)
	require.Len(t, schedule["Bob"], 1)
	assert.Equal(t, "", schedule["Bob"][0].Staff)

	unfilled := schedule.UnfilledSlots()
	require.Len(t, unfilled["Bob"], 1)
	assert.Equal(t, Interval{6, 7}, unfilled["Bob"][0])
	assert.Equal(t, 0, schedule.FilledCount())
}

func TestMatchStaffToClients_Empty(t *testing.T) {
	schedule := MatchStaffToClients(nil, nil)
	assert.Empty(t, schedule)
	assert.Equal(t, 0, schedule.FilledCount())

	schedule = MatchStaffToClients(testStaff(), nil)
	assert.Empty(t, schedule)
}

func TestSchedule_FilledCount(t *testing.T) {
	schedule := MatchStaffToClients(testStaff(), testClients())
	assert.Equal(t, 4, schedule.FilledCount())
	assert.Empty(t, schedule.UnfilledSlots())
}
