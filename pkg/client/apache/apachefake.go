package apache

import "context"

// FronterFake provides a Fronter for testing.
type FronterFake struct {
	// Sites maps installed site names to their values.
	Sites map[string]SiteValues
	// Enabled is the set of currently enabled sites.
	Enabled map[string]bool
	// Modules records enabled module names.
	Modules []string
	// Restarts counts Restart calls.
	Restarts int
	// Err (optional) is returned by every call.
	Err error
}

var _ Fronter = &FronterFake{}

func (f *FronterFake) EnableModule(ctx context.Context, name string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Modules = append(f.Modules, name)
	return nil
}

func (f *FronterFake) InstallSite(name string, values SiteValues) error {
	if f.Err != nil {
		return f.Err
	}
	if f.Sites == nil {
		f.Sites = make(map[string]SiteValues)
	}
	f.Sites[name] = values
	return nil
}

func (f *FronterFake) SiteExists(name string) bool {
	_, ok := f.Sites[name]
	return ok
}

func (f *FronterFake) EnableSite(ctx context.Context, name string) error {
	if f.Err != nil {
		return f.Err
	}
	if f.Enabled == nil {
		f.Enabled = make(map[string]bool)
	}
	f.Enabled[name] = true
	return nil
}

func (f *FronterFake) DisableSite(ctx context.Context, name string) error {
	if f.Err != nil {
		return f.Err
	}
	delete(f.Enabled, name)
	return nil
}

func (f *FronterFake) RemoveSite(name string) error {
	if f.Err != nil {
		return f.Err
	}
	delete(f.Sites, name)
	return nil
}

func (f *FronterFake) Restart(ctx context.Context) error {
	if f.Err != nil {
		return f.Err
	}
	f.Restarts++
	return nil
}
