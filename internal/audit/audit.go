package audit

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	ID        string `json:"id"` // Unique operation ID.
	Operation string `json:"op"` // "encrypt" or "decrypt".

	Source string `json:"source,omitempty"` // Input path as given by the caller.
	Output string `json:"output,omitempty"` // Output path, when one was written.
}

// Log appends an entry to the audit log at logPath.
// If logging fails, the entry is dropped silently. Operations should not
// fail just because audit logging failed.
func Log(logPath string, entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	// Open file for appending (create if it doesn't exist).
	// #nosec G306 -- the audit log records paths and timestamps, not secrets.
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}
