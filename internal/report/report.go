// Package report exports a finished directory session as a YAML document.
// Reports are write-only; staffdir never loads them back.
package report

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harrison/staffdir/internal/directory"
	"github.com/harrison/staffdir/internal/filelock"
)

// LockTimeout bounds how long Write waits for another process exporting to
// the same path.
const LockTimeout = 5 * time.Second

// Meta describes the session a report was taken from.
type Meta struct {
	SessionID string
	Source    string
	Commands  int
	Failures  int
	Generated time.Time
}

// department is one department block in the YAML document.
type department struct {
	Name      string   `yaml:"name"`
	Employees []string `yaml:"employees"`
}

type document struct {
	Session     string       `yaml:"session"`
	Source      string       `yaml:"source,omitempty"`
	Generated   string       `yaml:"generated"`
	Commands    int          `yaml:"commands"`
	Failures    int          `yaml:"failures"`
	Employees   int          `yaml:"employees"`
	Departments []department `yaml:"departments"`
}

// Marshal renders the directory as YAML with departments in ascending order.
func Marshal(d *directory.Directory, meta Meta) ([]byte, error) {
	generated := meta.Generated
	if generated.IsZero() {
		generated = time.Now()
	}

	doc := document{
		Session:     meta.SessionID,
		Source:      meta.Source,
		Generated:   generated.UTC().Format(time.RFC3339),
		Commands:    meta.Commands,
		Failures:    meta.Failures,
		Employees:   d.Len(),
		Departments: make([]department, 0),
	}

	snap := d.Snapshot()
	for _, name := range d.Departments() {
		doc.Departments = append(doc.Departments, department{Name: name, Employees: snap[name]})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}

// Write marshals the directory and writes it to path atomically under a file lock.
func Write(path string, d *directory.Directory, meta Meta) error {
	data, err := Marshal(d, meta)
	if err != nil {
		return err
	}
	if err := filelock.LockAndWrite(path, data, LockTimeout); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
