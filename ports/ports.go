// Package ports defines interfaces (contracts) between layers.
// These interfaces enable dependency injection and testability.
// Implementations live in adapters/.
package ports

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/ahmedw/folio/domain/project"
	"github.com/ahmedw/folio/domain/testcase"
)

// ErrNotFound is returned by stores when the requested row does not exist.
var ErrNotFound = errors.New("not found")

// -----------------------------------------------------------------------------
// Infrastructure Ports
// -----------------------------------------------------------------------------

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

// IDGenerator generates unique identifiers.
type IDGenerator interface {
	New() string
}

// Hasher derives a comparable digest from a plaintext admin password.
type Hasher interface {
	// Hash generates a digest from a plaintext value.
	Hash(plaintext string) (string, error)

	// Compare checks if plaintext matches digest in constant time.
	Compare(digest, plaintext string) bool
}

// -----------------------------------------------------------------------------
// Data Store Ports
// -----------------------------------------------------------------------------

// ProjectStore persists portfolio projects.
type ProjectStore interface {
	// List returns all projects ordered by id descending.
	List(ctx context.Context) ([]project.Project, error)

	// Get retrieves a project by ID. Returns ErrNotFound if missing.
	Get(ctx context.Context, id int64) (project.Project, error)

	// Create stores a new project and returns it with the assigned ID.
	Create(ctx context.Context, p project.Project) (project.Project, error)

	// Update overwrites title, description, details and file_url.
	// Returns ErrNotFound if the project does not exist.
	Update(ctx context.Context, p project.Project) error

	// Delete removes a project. Returns ErrNotFound if missing.
	Delete(ctx context.Context, id int64) error
}

// TestCaseStore persists manual test cases.
type TestCaseStore interface {
	// List returns all test cases, newest first.
	List(ctx context.Context) ([]testcase.TestCase, error)

	// Create stores a new test case.
	Create(ctx context.Context, tc testcase.TestCase) error

	// UpdateStatus sets the status of a test case.
	UpdateStatus(ctx context.Context, id string, status testcase.Status) error

	// UpdateNotes sets the notes of a test case.
	UpdateNotes(ctx context.Context, id, notes string) error

	// UpdateProcedure sets the procedure of a test case.
	UpdateProcedure(ctx context.Context, id, procedure string) error
}

// Testimonial is a quote displayed on the about page.
type Testimonial struct {
	ID        int64
	Author    string
	Role      string
	Quote     string
	CreatedAt time.Time
}

// TestimonialStore reads testimonials for the public pages.
type TestimonialStore interface {
	// List returns all testimonials, newest first.
	List(ctx context.Context) ([]Testimonial, error)
}

// FileStore persists uploaded project attachments.
type FileStore interface {
	// Save stores the content under a collision-resistant name derived from
	// originalName's extension and returns a publicly resolvable URL.
	Save(ctx context.Context, originalName string, content io.Reader) (string, error)
}

// -----------------------------------------------------------------------------
// External Collaborator Ports
// -----------------------------------------------------------------------------

// MountUsage describes disk usage for one mount point in gigabytes.
type MountUsage struct {
	MountPoint string  `json:"mountPoint"`
	TotalGB    float64 `json:"total"`
	UsedGB     float64 `json:"used"`
	FreeGB     float64 `json:"free"`
}

// NetworkInterface describes one active network interface.
type NetworkInterface struct {
	Name string `json:"interface"`
	IPv4 string `json:"ipv4,omitempty"`
	Up   bool   `json:"up"`
}

// SystemSnapshot is a point-in-time view of host resources.
type SystemSnapshot struct {
	Hostname     string             `json:"hostname"`
	Platform     string             `json:"platform"`
	Arch         string             `json:"arch"`
	CPUTemp      *float64           `json:"cpuTemp"`
	CPUUsage     []float64          `json:"cpuUsage"`
	MemTotalGB   float64            `json:"memTotal"`
	MemUsedGB    float64            `json:"memUsed"`
	MemFreeGB    float64            `json:"memFree"`
	Storage      []MountUsage       `json:"storageInfo"`
	TotalStorage MountUsage         `json:"totalStorage"`
	Network      []NetworkInterface `json:"network"`
}

// SystemInfo reports host CPU/memory/disk/network metrics.
type SystemInfo interface {
	Snapshot(ctx context.Context) (SystemSnapshot, error)
}

// ImageAnalyzer forwards a camera image to an external vision model.
type ImageAnalyzer interface {
	// Analyze takes a base64-encoded JPEG and returns the model's
	// seat-occupancy description.
	Analyze(ctx context.Context, base64Image string) (string, error)
}

// Camera captures a still image from the host camera.
type Camera interface {
	// Capture returns the image as a base64 data URL.
	Capture(ctx context.Context) (string, error)
}
