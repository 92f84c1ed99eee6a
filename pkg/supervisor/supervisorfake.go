package supervisor

import "sort"

// Fake provides a Supervisor for testing.
type Fake struct {
	// Commands maps running process names to their command line.
	Commands map[string][]string
	// Stopped records stopped names, including names that were never started.
	Stopped []string
	// Err (optional) is returned by every call.
	Err error
}

var _ Supervisor = &Fake{}

func (f *Fake) Start(name string, cmd string, args ...string) error {
	if f.Err != nil {
		return f.Err
	}
	if f.Commands == nil {
		f.Commands = make(map[string][]string)
	}
	f.Commands[name] = append([]string{cmd}, args...)
	return nil
}

func (f *Fake) Stop(name string) error {
	if f.Err != nil {
		return f.Err
	}
	delete(f.Commands, name)
	f.Stopped = append(f.Stopped, name)
	return nil
}

func (f *Fake) Names() ([]string, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	var r []string
	for n := range f.Commands {
		r = append(r, n)
	}
	sort.Strings(r)
	return r, nil
}
