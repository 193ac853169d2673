package compose

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Launcher opens a compose window for phone and body.
type Launcher interface {
	Open(ctx context.Context, phone, body string) error
}

// CommandRunner starts an external program. It exists so tests can observe
// the command instead of spawning it.
type CommandRunner func(ctx context.Context, name string, args ...string) error

// SystemLauncher opens sms: links with the desktop URL handler.
type SystemLauncher struct {
	Platform Platform      // Dialect of the generated link; resolved, not auto
	GOOS     string        // Host OS; empty means runtime.GOOS
	Run      CommandRunner // Defaults to exec.CommandContext(...).Start
}

// NewSystemLauncher creates a launcher for the host OS.
func NewSystemLauncher(platform Platform) *SystemLauncher {
	return &SystemLauncher{Platform: HostPlatform(platform)}
}

// Open implements Launcher.
func (l *SystemLauncher) Open(ctx context.Context, phone, body string) error {
	uri := URI(phone, body, l.Platform)

	name, args := l.command(uri)
	run := l.Run
	if run == nil {
		run = startCommand
	}

	if err := run(ctx, name, args...); err != nil {
		return fmt.Errorf("failed to launch %s: %w", name, err)
	}
	return nil
}

// command picks the URL opener for the host OS.
func (l *SystemLauncher) command(uri string) (string, []string) {
	goos := l.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	switch goos {
	case "darwin":
		return "open", []string{uri}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", uri}
	default:
		return "xdg-open", []string{uri}
	}
}

func startCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// The handler outlives us; reap it in the background
	go func() { _ = cmd.Wait() }()
	return nil
}
