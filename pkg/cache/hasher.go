package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"rostering/pkg/domain"
)

// RosterHash computes a hash of a roster and its customer list for use
// as a cache key. The hash depends only on the matching inputs, not on
// any assignments already recorded on the employees.
func RosterHash(roster *domain.Roster, customers []string) string {
	if roster == nil {
		return ""
	}

	data := rosterToCanonical(roster, customers)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:16])
}

// rosterToCanonical builds a deterministic byte representation of the
// matching inputs.
func rosterToCanonical(roster *domain.Roster, customers []string) []byte {
	names := make([]string, 0, roster.Len())
	byName := make(map[string]*domain.Employee, roster.Len())
	for _, e := range roster.Employees {
		names = append(names, e.Name)
		byName[e.Name] = e
	}
	sort.Strings(names)

	sortedCustomers := make([]string, len(customers))
	copy(sortedCustomers, customers)
	sort.Strings(sortedCustomers)

	var result []byte

	for _, c := range sortedCustomers {
		result = append(result, []byte(fmt.Sprintf("c:%s;", c))...)
	}

	for _, name := range names {
		e := byName[name]
		result = append(result, []byte(fmt.Sprintf("e:%s:%t:", name, e.Available))...)
		// AllowedList is already sorted
		for _, c := range e.AllowedList() {
			result = append(result, []byte(fmt.Sprintf("%s,", c))...)
		}
		result = append(result, ';')
	}

	return result
}

// BuildMatchKey builds a cache key for a match result.
func BuildMatchKey(rosterHash string) string {
	return fmt.Sprintf("match:%s", rosterHash)
}

// QuickHash computes a full SHA-256 hash of arbitrary data.
func QuickHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ShortHash computes a 16-character hash of arbitrary data.
func ShortHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:8])
}
