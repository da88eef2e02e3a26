package cache

import (
	"testing"

	"rostering/pkg/domain"
)

func testRoster() *domain.Roster {
	return domain.NewRoster(
		domain.NewEmployee("Alice", "Customer1", "Customer2"),
		domain.NewEmployee("Bob", "Customer2"),
	)
}

func TestRosterHash_Deterministic(t *testing.T) {
	customers := []string{"Customer1", "Customer2"}

	h1 := RosterHash(testRoster(), customers)
	h2 := RosterHash(testRoster(), customers)

	if h1 == "" {
		t.Fatal("hash should not be empty")
	}
	if h1 != h2 {
		t.Errorf("same inputs produced different hashes: %s vs %s", h1, h2)
	}
}

func TestRosterHash_OrderIndependent(t *testing.T) {
	r1 := domain.NewRoster(
		domain.NewEmployee("Alice", "Customer1"),
		domain.NewEmployee("Bob", "Customer2"),
	)
	r2 := domain.NewRoster(
		domain.NewEmployee("Bob", "Customer2"),
		domain.NewEmployee("Alice", "Customer1"),
	)

	h1 := RosterHash(r1, []string{"Customer1", "Customer2"})
	h2 := RosterHash(r2, []string{"Customer2", "Customer1"})

	if h1 != h2 {
		t.Error("employee and customer ordering should not affect the hash")
	}
}

func TestRosterHash_SensitiveToChanges(t *testing.T) {
	customers := []string{"Customer1", "Customer2"}
	base := RosterHash(testRoster(), customers)

	changed := testRoster()
	changed.Employees[0].Available = false
	if RosterHash(changed, customers) == base {
		t.Error("availability change should change the hash")
	}

	extra := testRoster()
	extra.Add(domain.NewEmployee("Charlie", "Customer1"))
	if RosterHash(extra, customers) == base {
		t.Error("adding an employee should change the hash")
	}

	if RosterHash(testRoster(), []string{"Customer1"}) == base {
		t.Error("removing a customer should change the hash")
	}
}

func TestRosterHash_IgnoresAssignments(t *testing.T) {
	customers := []string{"Customer1", "Customer2"}
	base := RosterHash(testRoster(), customers)

	assigned := testRoster()
	assigned.Employees[0].Assign("Customer1")

	if RosterHash(assigned, customers) != base {
		t.Error("existing assignments should not affect the hash")
	}
}

func TestRosterHash_Nil(t *testing.T) {
	if RosterHash(nil, nil) != "" {
		t.Error("nil roster should hash to empty string")
	}
}

func TestBuildMatchKey(t *testing.T) {
	key := BuildMatchKey("abc123")
	if key != "match:abc123" {
		t.Errorf("key = %s, want match:abc123", key)
	}
}

func TestQuickHash(t *testing.T) {
	h := QuickHash([]byte("hello"))
	if len(h) != 64 {
		t.Errorf("QuickHash length = %d, want 64", len(h))
	}

	s := ShortHash([]byte("hello"))
	if len(s) != 16 {
		t.Errorf("ShortHash length = %d, want 16", len(s))
	}
}
