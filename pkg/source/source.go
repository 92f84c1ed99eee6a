// Package source maintains local copies of (remote) repositories.
package source

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-logr/logr"
	multierror "github.com/hashicorp/go-multierror"
	otia10copy "github.com/otiai10/copy"

	"github.com/ostacklab/heatup/pkg/config"
	"github.com/ostacklab/heatup/pkg/util/exe"
)

// Usage of this package involves the following steps:
//	1. Workspaces are Registered - the service and its client library each get one.
//	2. Remote repos (or filesystems) are fetched.
//	3. The workspace sources are 'get' from the local repo.
//	4. Lifecycle steps run commands in the workspace directories.
//
//                 fetch             get
// 	remote repo  --------->  repo  ------->  workspace
// 	filesystem

// Sources keeps a list of workspaces and the associated source repositories.
// Workspaces are added with Register().
type Sources struct {
	// RootPath is the root of the "workspace" and "repo" directories.
	// Workspaces have paths like "<RootPath>/workspace/heat".
	RootPath string

	// Workspaces by consumer name.
	workspaces map[string]Workspace

	// Repos keeps track of the remote repos/filesystems.
	repos map[config.SourceSpec]repo

	Log logr.Logger
}

// Workspace is a copy of a repo dedicated to a consumer.
type Workspace struct {
	// Path of the work directory.
	Path string
	// Spec of the required repo.
	Spec config.SourceSpec
	// Hash of the content.
	Hash string
	// Synced is true once the repo content is copied to the workspace.
	Synced bool
}

// Repo represents a local copy of a remote (GIT) repo or filesystem.
type repo struct {
	lastFetched time.Time
	hash        string
}

// Register name as requiring a workspace with spec content.
func (ss *Sources) Register(name string, spec config.SourceSpec) error {
	if ss.workspaces == nil {
		ss.workspaces = make(map[string]Workspace)
	}

	if w, ok := ss.workspaces[name]; ok {
		if spec == w.Spec {
			return nil
		}
		// workspace exists but the spec has changed.
		w.Spec = spec
		w.Synced = false
		ss.workspaces[name] = w

		return nil
	}

	p := filepath.Join(ss.RootPath, "workspace", name)
	if err := os.MkdirAll(p, 0750); err != nil {
		return err
	}
	ss.workspaces[name] = Workspace{
		Path: p,
		Spec: spec,
	}

	return nil
}

// FetchAll fetches all remote repos or filesystems into a local repo directory.
func (ss *Sources) FetchAll(ctx context.Context) error {
	var errs error
	for _, w := range ss.workspaces {
		if err := ss.fetch(ctx, w.Spec); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}

// Get copies the source content to a workspace and returns true if the
// workspace has changed.
func (ss *Sources) Get(name string) (bool, error) {
	w, ok := ss.workspaces[name]
	if !ok {
		return false, fmt.Errorf("source: workspace not found: %s", name)
	}

	r, ok := ss.repos[w.Spec]
	if !ok {
		return false, fmt.Errorf("source: get(%s): repo not fetched yet", name)
	}

	if w.Hash == r.hash {
		return false, nil
	}

	ss.Log.Info("Get workspace (repo changed)", "name", name)

	err := otia10copy.Copy(ss.repoPath(w.Spec), w.Path, otia10copy.Options{
		Skip: func(p string) bool { return strings.HasSuffix(p, ".git") },
	})
	if err != nil {
		return false, fmt.Errorf("source: get(%s): %w", name, err)
	}

	w.Hash = r.hash
	w.Synced = true
	ss.workspaces[name] = w

	return true, nil
}

// Workspace returns the Workspace registered under name.
// Returns false if the workspace is not found.
func (ss *Sources) Workspace(name string) (Workspace, bool) {
	w, ok := ss.workspaces[name]

	return w, ok
}

// For testing.
var timeNow = time.Now

// Fetch fetches a remote repo or filesystem specified by spec into a local
// repo directory.
func (ss *Sources) fetch(ctx context.Context, spec config.SourceSpec) error {
	if ss.repos == nil {
		ss.repos = make(map[config.SourceSpec]repo)
	}

	var err error
	var h string
	switch spec.Type {
	case "git":
		h, err = ss.gitFetch(ctx, spec)
	case "local":
		h, err = ss.localFetch(spec)
	default:
		err = fmt.Errorf("source: unknown type: %s", spec.Type)
	}
	if err != nil {
		return err
	}

	ss.repos[spec] = repo{
		lastFetched: timeNow(),
		hash:        h,
	}

	return nil
}

// LocalFetch fetches the content of a local source like a directory and
// returns its hash.
func (ss *Sources) localFetch(spec config.SourceSpec) (string, error) {
	p := ss.repoPath(spec)
	if err := os.MkdirAll(p, 0750); err != nil {
		return "", err
	}

	err := otia10copy.Copy(spec.URL, p, otia10copy.Options{Skip: func(src string) bool {
		return filepath.Base(src) == ".git"
	}})
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}

	h, err := ss.hashAll(spec.URL)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// GITFetch fetches content of a GIT repo at the pinned ref and returns its hash.
func (ss *Sources) gitFetch(ctx context.Context, spec config.SourceSpec) (string, error) {
	p := ss.repoPath(spec)
	_, err := os.Stat(p)
	if os.IsNotExist(err) {
		// Clone new repo.
		d, _ := filepath.Split(p)
		if err = os.MkdirAll(d, 0750); err != nil {
			return "", err
		}

		_, _, err = exe.Run(ctx, ss.Log, &exe.Opt{Dir: d}, "", "git", "clone", spec.URL)
		if err != nil {
			return "", err
		}

		_, _, err = exe.Run(ctx, ss.Log, &exe.Opt{Dir: p}, "", "git", "checkout", spec.Ref)
		if err != nil {
			return "", err
		}
		ss.Log.Info("GIT-clone", "url", spec.URL, "ref", spec.Ref)
	} else {
		// Pull existing repo content.
		_, _, err = exe.Run(ctx, ss.Log, &exe.Opt{Dir: p}, "", "git", "pull", "origin", spec.Ref)
		if err != nil {
			return "", err
		}
		ss.Log.V(2).Info("GIT-pull", "url", spec.URL, "ref", spec.Ref)
	}

	h, _, err := exe.Run(ctx, ss.Log, &exe.Opt{Dir: p}, "", "git", "rev-parse", spec.Ref)
	if err != nil {
		return "", err
	}
	h = strings.TrimRight(h, "\n\r")
	if len(h) == 0 {
		return "", fmt.Errorf("expected git hash")
	}

	return h, nil
}

// RepoPath returns a path to a repo.
// The path is in the form RootPath/repo/url/ref/name where name is the base
// element of the URL, url and ref elements are mangled.
func (ss *Sources) repoPath(spec config.SourceSpec) string {
	b := path.Base(spec.URL)
	u := fmt.Sprintf("%x", sha1.Sum([]byte(spec.URL)))[:8]
	r := strings.ReplaceAll(spec.Ref, "/", "")

	return filepath.Join(ss.RootPath, "repo", u, r, strings.TrimSuffix(b, ".git"))
}

// HashAll returns the hash of the content of dir.
func (ss *Sources) hashAll(dir string) (hash.Hash, error) {
	h := sha1.New()
	err := filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		io.WriteString(h, rel)

		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(h, f)

		return err
	})

	return h, err
}
