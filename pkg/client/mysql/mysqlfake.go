package mysql

import "context"

// DatabaserFake provides a Databaser for testing.
type DatabaserFake struct {
	// Recreated records the database names passed to Recreate.
	Recreated []string
	// Err (optional) is returned by every call.
	Err error
}

var _ Databaser = &DatabaserFake{}

func (m *DatabaserFake) Recreate(ctx context.Context, name string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Recreated = append(m.Recreated, name)
	return nil
}
