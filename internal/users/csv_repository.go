package users

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/walterobrien/authsim/internal/shared"
)

// header is the fixed column order of the backing file.
var header = []string{"id", "email", "name", "password", "created_at", "updated_at"}

// updatableFields are the record fields Update may overwrite.
var updatableFields = map[string]struct{}{
	"email":        {},
	"name":         {},
	"password":     {},
	"is_logged_in": {},
}

// CSVRepository owns the authoritative in-memory account collection and
// mirrors it on a comma-separated file. The file is loaded once at bind time
// and fully rewritten on every Save.
//
// The collection is guarded by a mutex so the repository stays safe if it is
// ever driven by more than one goroutine, even though the console shell
// itself is strictly sequential.
type CSVRepository struct {
	mu    sync.Mutex
	path  string
	users []*Record
}

// NewCSVRepository binds a repository to the given file path. The path must
// be non-empty and end in ".csv". A missing file is created empty; a
// non-empty file is eagerly parsed into memory. Open or parse failures are
// reported as shared.ErrStorageUnavailable.
func NewCSVRepository(path string) (*CSVRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: storage file path is empty", shared.ErrInvalidArgument)
	}
	if !strings.HasSuffix(path, ".csv") {
		return nil, fmt.Errorf("%w: storage file must be a .csv file", shared.ErrInvalidArgument)
	}

	r := &CSVRepository{path: path}

	fi, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: stat %s: %v", shared.ErrStorageUnavailable, path, err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o660)
		if err != nil {
			return nil, fmt.Errorf("%w: create %s: %v", shared.ErrStorageUnavailable, path, err)
		}
		_ = f.Close()
		return r, nil
	}

	if fi.Size() > 0 {
		if err := r.load(); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// load parses every row of the backing file into the in-memory collection.
func (r *CSVRepository) load() error {
	f, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", shared.ErrStorageUnavailable, r.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(header)

	// header row
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("%w: read %s: %v", shared.ErrStorageUnavailable, r.path, err)
	}

	var records []*Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: read %s: %v", shared.ErrStorageUnavailable, r.path, err)
		}
		rec := &Record{
			ID:        row[0],
			Email:     row[1],
			Name:      row[2],
			Password:  row[3],
			CreatedAt: row[4],
			UpdatedAt: row[5],
		}
		// Reject rows that can no longer be reconstructed.
		if _, err := rec.entity(); err != nil {
			return fmt.Errorf("%w: %s: %v", shared.ErrStorageUnavailable, r.path, err)
		}
		records = append(records, rec)
	}

	r.users = records
	return nil
}

// Add appends the storage projection of user to the collection after
// checking the uniqueness invariants.
func (r *CSVRepository) Add(ctx context.Context, user *User) (*User, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: user is nil", shared.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.users {
		if rec.ID == user.ID() {
			return nil, fmt.Errorf("%w: %s", shared.ErrDuplicateID, user.ID())
		}
		if rec.Email == user.Email() {
			return nil, fmt.Errorf("%w: %s", shared.ErrDuplicateEmail, user.Email())
		}
	}

	rec := user.Record()
	r.users = append(r.users, &rec)
	return user, nil
}

// Update overwrites the whitelisted fields of the record with the given id.
// A nil fields map is an error; an unknown id is not and yields (nil, nil).
func (r *CSVRepository) Update(ctx context.Context, id string, fields map[string]any) (*User, error) {
	if fields == nil {
		return nil, fmt.Errorf("%w: fields map is nil", shared.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.find(id)
	if rec == nil {
		return nil, nil
	}

	u, err := rec.entity()
	if err != nil {
		return nil, err
	}

	for key, value := range fields {
		if _, ok := updatableFields[key]; !ok || value == nil {
			continue
		}
		switch key {
		case "email":
			s, ok := value.(string)
			if !ok {
				continue
			}
			if err := u.SetEmail(s); err != nil {
				return nil, err
			}
		case "name":
			if s, ok := value.(string); ok {
				u.SetName(s)
			}
		case "password":
			// The value is an already-hashed string; plaintext never
			// reaches the repository.
			if s, ok := value.(string); ok {
				u.passwordHash = s
			}
		case "is_logged_in":
			if b, ok := value.(bool); ok {
				u.SetLoggedIn(b)
			}
		}
	}

	u.Touch()
	*rec = u.Record()
	return u, nil
}

// Get scans for a record by id. It returns the reconstructed entity together
// with its backing record, or (nil, nil) when the id is unknown.
func (r *CSVRepository) Get(ctx context.Context, id string) (*User, *Record) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.find(id)
	if rec == nil {
		return nil, nil
	}
	u, err := rec.entity()
	if err != nil {
		return nil, nil
	}
	return u, rec
}

// GetByEmail scans for a record by exact email match. Absence yields
// (nil, nil).
func (r *CSVRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.users {
		if rec.Email == email {
			return rec.entity()
		}
	}
	return nil, nil
}

// Delete removes the record with the given id from the collection.
func (r *CSVRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rec := range r.users {
		if rec.ID == id {
			r.users = slices.Delete(r.users, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("%w: user with id %s does not exist", shared.ErrNotFound, id)
}

// All returns a restartable sequence over a snapshot of the collection,
// reconstructing entities lazily as the caller iterates. An empty collection
// yields an empty sequence.
func (r *CSVRepository) All(ctx context.Context) iter.Seq[*User] {
	r.mu.Lock()
	snapshot := slices.Clone(r.users)
	r.mu.Unlock()

	return func(yield func(*User) bool) {
		for _, rec := range snapshot {
			u, err := rec.entity()
			if err != nil {
				continue
			}
			if !yield(u) {
				return
			}
		}
	}
}

// Save fully rewrites the backing file from the in-memory collection: a
// header row followed by one row per record. The new contents are written to
// a temporary file first and renamed over the target, so a crash mid-write
// cannot corrupt the previous state.
func (r *CSVRepository) Save(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".authsim-*.csv")
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorageUnavailable, err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %v", shared.ErrStorageUnavailable, err)
	}
	for _, rec := range r.users {
		if err := w.Write(rec.row()); err != nil {
			_ = tmp.Close()
			return fmt.Errorf("%w: %v", shared.ErrStorageUnavailable, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %v", shared.ErrStorageUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorageUnavailable, err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorageUnavailable, err)
	}
	return nil
}

// find locates the backing record by id. Callers must hold the mutex.
func (r *CSVRepository) find(id string) *Record {
	for _, rec := range r.users {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}
