// Package camera captures still images from the host camera by shelling
// out to libcamera-still, the stack used on Raspberry Pi OS.
package camera

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ahmedw/folio/ports"
)

// Libcamera captures JPEG stills via an external binary.
type Libcamera struct {
	binary  string
	args    []string
	tmpDir  string
	timeout time.Duration
}

// NewLibcamera creates a capture adapter. With an empty binary the standard
// libcamera-still invocation is used. Args may contain the {output}
// placeholder which is replaced with the temp file path.
func NewLibcamera(binary string, args []string, tmpDir string, timeout time.Duration) *Libcamera {
	if binary == "" {
		binary = "libcamera-still"
	}
	if args == nil {
		args = []string{"--immediate", "--nopreview", "-o", "{output}", "-t", "100", "--width", "1920", "--height", "1080"}
	}
	if tmpDir == "" {
		tmpDir = os.TempDir()
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Libcamera{binary: binary, args: args, tmpDir: tmpDir, timeout: timeout}
}

// Capture takes a still and returns it as a base64 data URL. The temp file
// is removed regardless of outcome.
func (l *Libcamera) Capture(ctx context.Context) (string, error) {
	if err := os.MkdirAll(l.tmpDir, 0o755); err != nil {
		return "", fmt.Errorf("create tmp dir: %w", err)
	}

	path := filepath.Join(l.tmpDir, "capture-"+strconv.FormatInt(time.Now().UnixNano(), 10)+".jpg")
	defer os.Remove(path)

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	args := make([]string, len(l.args))
	for i, a := range l.args {
		if a == "{output}" {
			a = path
		}
		args[i] = a
	}

	cmd := exec.CommandContext(ctx, l.binary, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("capture command: %w: %s", err, out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read capture: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data), nil
}

// Ensure interface compliance.
var _ ports.Camera = (*Libcamera)(nil)
