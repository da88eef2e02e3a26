// Package roster loads matching inputs from YAML files.
package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"rostering/pkg/apperror"
	"rostering/pkg/domain"
)

// File is the on-disk roster description.
//
//	customers:
//	  - Customer1
//	  - Customer2
//	employees:
//	  - name: Alice
//	    available: true
//	    customers: [Customer1, Customer2]
type File struct {
	Customers []string        `yaml:"customers"`
	Employees []EmployeeEntry `yaml:"employees"`
}

// EmployeeEntry is one employee in the roster file.
type EmployeeEntry struct {
	Name      string   `yaml:"name"`
	Available *bool    `yaml:"available"` // nil means available
	Customers []string `yaml:"customers"`
}

// Load reads and parses a roster file.
func Load(path string) (*domain.Roster, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	return Parse(data)
}

// Parse builds a roster and customer list from YAML bytes. Employee and
// customer order in the file is preserved; it decides tie-breaks during
// matching.
func Parse(data []byte) (*domain.Roster, []string, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, apperror.Wrap(err, apperror.CodeInvalidArgument, "invalid roster file")
	}

	roster := domain.NewRoster()
	for _, entry := range file.Employees {
		if entry.Name == "" {
			return nil, nil, apperror.NewWithField(apperror.CodeInvalidArgument,
				"employee entry without a name", "name")
		}
		e := domain.NewEmployee(entry.Name, entry.Customers...)
		if entry.Available != nil {
			e.Available = *entry.Available
		}
		roster.Add(e)
	}

	return roster, file.Customers, nil
}
