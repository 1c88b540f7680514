// Package directory holds the in-memory employee directory.
//
// Employees are grouped by department. Each department keeps its members
// in ascending byte order with no duplicates, and a department exists only
// while it has at least one member. Every operation validates all of its
// preconditions before mutating, so a failed call leaves the directory
// exactly as it was.
//
// A Directory is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
package directory

import (
	"fmt"
	"slices"
	"sort"
)

// Entry is one employee listed with their department.
type Entry struct {
	Name       string `yaml:"name"`
	Department string `yaml:"department"`
}

// String formats the entry as "name (department)".
func (e Entry) String() string {
	return fmt.Sprintf("%s (%s)", e.Name, e.Department)
}

// Snapshot is a detached copy of the directory contents keyed by department.
type Snapshot map[string][]string

// Directory maps department names to their sorted member lists.
type Directory struct {
	departments map[string][]string
}

// New returns an empty Directory.
func New() *Directory {
	return &Directory{departments: make(map[string][]string)}
}

// Add inserts name into department, creating the department if needed.
func (d *Directory) Add(name, department string) error {
	if name == "" || department == "" {
		return newOpError("add", name, department, ErrMissingArgument)
	}

	members := d.departments[department]
	pos, found := slices.BinarySearch(members, name)
	if found {
		return newOpError("add", name, department, ErrDuplicateEmployee)
	}

	d.departments[department] = slices.Insert(members, pos, name)
	return nil
}

// Remove deletes name from department. The department is dropped once empty.
func (d *Directory) Remove(name, department string) error {
	if name == "" || department == "" {
		return newOpError("remove", name, department, ErrMissingArgument)
	}

	members, ok := d.departments[department]
	if !ok {
		return newOpError("remove", "", department, ErrDepartmentNotFound)
	}

	pos, found := slices.BinarySearch(members, name)
	if !found {
		return newOpError("remove", name, department, ErrEmployeeNotFound)
	}

	d.removeAt(department, pos)
	return nil
}

// Move transfers name from one department to another.
// Both departments are checked before either is touched.
func (d *Directory) Move(name, from, to string) error {
	if name == "" || from == "" || to == "" {
		return newOpError("move", name, from, ErrMissingArgument)
	}

	members, ok := d.departments[from]
	if !ok {
		return newOpError("move", "", from, ErrDepartmentNotFound)
	}

	pos, found := slices.BinarySearch(members, name)
	if !found {
		return newOpError("move", name, from, ErrEmployeeNotFound)
	}

	target := d.departments[to]
	insertAt, exists := slices.BinarySearch(target, name)
	if exists {
		return newOpError("move", name, to, ErrDuplicateEmployee)
	}

	d.removeAt(from, pos)
	d.departments[to] = slices.Insert(target, insertAt, name)
	return nil
}

// Rename replaces oldName with newName inside department, keeping the list sorted.
func (d *Directory) Rename(oldName, department, newName string) error {
	if oldName == "" || department == "" || newName == "" {
		return newOpError("rename", oldName, department, ErrMissingArgument)
	}

	members, ok := d.departments[department]
	if !ok {
		return newOpError("rename", "", department, ErrDepartmentNotFound)
	}

	pos, found := slices.BinarySearch(members, oldName)
	if !found {
		return newOpError("rename", oldName, department, ErrEmployeeNotFound)
	}
	if oldName == newName {
		return nil
	}
	if _, taken := slices.BinarySearch(members, newName); taken {
		return newOpError("rename", newName, department, ErrDuplicateEmployee)
	}

	members = slices.Delete(members, pos, pos+1)
	insertAt, _ := slices.BinarySearch(members, newName)
	d.departments[department] = slices.Insert(members, insertAt, newName)
	return nil
}

// Print lists employees. With an empty department it returns every employee
// as "name (department)", ordered by name and then department; otherwise it
// returns the department's members.
func (d *Directory) Print(department string) ([]string, error) {
	if department == "" {
		entries := d.Entries()
		out := make([]string, len(entries))
		for i, e := range entries {
			out[i] = e.String()
		}
		return out, nil
	}

	members, ok := d.departments[department]
	if !ok {
		return nil, newOpError("print", "", department, ErrDepartmentNotFound)
	}
	return slices.Clone(members), nil
}

// Entries returns every employee ordered by name, then department.
func (d *Directory) Entries() []Entry {
	entries := make([]Entry, 0, d.Len())
	for dept, members := range d.departments {
		for _, name := range members {
			entries = append(entries, Entry{Name: name, Department: dept})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Department < entries[j].Department
	})
	return entries
}

// Departments returns the department names in ascending order.
func (d *Directory) Departments() []string {
	names := make([]string, 0, len(d.departments))
	for dept := range d.departments {
		names = append(names, dept)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is a member of department.
func (d *Directory) Has(name, department string) bool {
	_, found := slices.BinarySearch(d.departments[department], name)
	return found
}

// Len returns the total number of department memberships.
func (d *Directory) Len() int {
	n := 0
	for _, members := range d.departments {
		n += len(members)
	}
	return n
}

// Snapshot returns a deep copy of the directory contents.
func (d *Directory) Snapshot() Snapshot {
	snap := make(Snapshot, len(d.departments))
	for dept, members := range d.departments {
		snap[dept] = slices.Clone(members)
	}
	return snap
}

// removeAt drops the member at pos and deletes the department if it empties.
func (d *Directory) removeAt(department string, pos int) {
	members := slices.Delete(d.departments[department], pos, pos+1)
	if len(members) == 0 {
		delete(d.departments, department)
		return
	}
	d.departments[department] = members
}
