// Package supervisor starts and stops named long-running processes.
//
// A process is identified by its registered name. State is kept as a pid file
// per process so start and stop work across invocations of the tool.
package supervisor

import (
	"fmt"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/go-logr/logr"
)

// Supervisor is able to run named long-running commands.
type Supervisor interface {
	// Start runs cmd with args registered under name.
	// Stdout and stderr go to the process log file.
	Start(name string, cmd string, args ...string) error
	// Stop terminates the process registered under name.
	// Stopping a name that is not running is not an error.
	Stop(name string) error
	// Names returns the names of the registered processes.
	Names() ([]string, error)
}

// Exec supervises processes with pid files under RunDir.
type Exec struct {
	// RunDir holds a <name>.pid file per running process.
	RunDir string
	// LogDir receives a <name>.log file per process.
	LogDir string

	Log logr.Logger
}

var _ Supervisor = &Exec{}

// Start implements Supervisor.
func (e *Exec) Start(name string, cmd string, args ...string) error {
	for _, d := range []string{e.RunDir, e.LogDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return err
		}
	}

	if pid, err := e.pid(name); err == nil {
		return fmt.Errorf("process %s already running (pid %d)", name, pid)
	}

	lf, err := os.OpenFile(filepath.Join(e.LogDir, name+".log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer lf.Close()

	e.Log.V(2).Info("Start", "name", name, "cmd", cmd, "args", args)

	c := exec.Command(cmd, args...)
	c.Stdout, c.Stderr = lf, lf
	// own process group so the process outlives this tool and can be
	// signalled as a group on Stop.
	c.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := c.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}

	pid := c.Process.Pid
	if err := ioutil.WriteFile(e.pidPath(name), []byte(strconv.Itoa(pid)), 0644); err != nil {
		return err
	}

	go c.Wait() // reap if the child exits while we are still around.

	return nil
}

// Stop implements Supervisor.
func (e *Exec) Stop(name string) error {
	pid, err := e.pid(name)
	if err != nil {
		if os.IsNotExist(err) {
			e.Log.V(2).Info("Stop: not running", "name", name)
			return nil
		}
		return err
	}

	e.Log.V(2).Info("Stop", "name", name, "pid", pid)

	// signal the process group.
	if err := syscall.Kill(-pid, syscall.SIGTERM); err != nil && err != syscall.ESRCH {
		return fmt.Errorf("stop %s: %w", name, err)
	}

	return os.Remove(e.pidPath(name))
}

// Names implements Supervisor.
func (e *Exec) Names() ([]string, error) {
	fis, err := ioutil.ReadDir(e.RunDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var r []string
	for _, fi := range fis {
		if strings.HasSuffix(fi.Name(), ".pid") {
			r = append(r, strings.TrimSuffix(fi.Name(), ".pid"))
		}
	}

	return r, nil
}

func (e *Exec) pidPath(name string) string {
	return filepath.Join(e.RunDir, name+".pid")
}

func (e *Exec) pid(name string) (int, error) {
	b, err := ioutil.ReadFile(e.pidPath(name))
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(strings.TrimSpace(string(b)))
}
