package startog

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
)

// Collection is one loaded snapshot of projects. A new Collection is created
// for every load; its ID identifies the snapshot, not its content.
type Collection struct {
	ID       string
	Projects []*Project
	LoadedAt time.Time
}

// NewCollection wraps projects in a Collection with a fresh ID.
func NewCollection(projects []*Project) *Collection {
	return &Collection{
		ID:       uuid.NewString(),
		Projects: projects,
		LoadedAt: time.Now(),
	}
}

// Len returns the number of projects in the collection.
// A nil collection has no projects.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Projects)
}

// DecodeProjects reads a JSON array of projects from r.
//
// Elements are decoded one at a time. A field holding a value of the wrong
// type is left at its zero value rather than failing the whole document.
// Returns EINVALID if the document is not a JSON array.
func DecodeProjects(r io.Reader) ([]*Project, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, Errorf(EINVALID, "decoding projects: %s", err)
	}

	projects := make([]*Project, 0, len(raw))
	for _, msg := range raw {
		p := &Project{}
		if err := decodeProject(msg, p); err != nil {
			return nil, Errorf(EINVALID, "decoding project: %s", err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func decodeProject(msg json.RawMessage, p *Project) error {
	if bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
		return nil
	}

	err := json.Unmarshal(msg, p)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		// encoding/json keeps decoding past type mismatches, so p holds
		// every field that did decode.
		return nil
	}
	return err
}
