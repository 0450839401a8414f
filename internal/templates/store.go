package templates

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/cv-generator/internal/schemas"
	"github.com/jonathan/cv-generator/internal/types"
)

// StorageKey is the well-known key the serialized catalogue lives under.
const StorageKey = "cv_generator_templates"

// Store owns the template catalogue. Every mutating operation reads the full
// catalogue, applies its change, and writes the full catalogue back under a
// single mutex, so read-modify-write races are impossible and a failed
// operation leaves the stored catalogue exactly as before the call.
type Store struct {
	mu       sync.Mutex
	storage  Storage
	validate *validator.Validate
	now      func() time.Time
	newID    func() string
}

// NewStore creates a Store over the given storage backend.
func NewStore(storage Storage) *Store {
	return &Store{
		storage:  storage,
		validate: validator.New(),
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
}

// load reads the catalogue, lazy-seeding the built-ins when the backing
// store has never been written.
func (s *Store) load() ([]types.Template, error) {
	data, ok, err := s.storage.GetItem(StorageKey)
	if err != nil {
		return nil, &StorageError{Message: "failed to read catalogue", Cause: err}
	}
	if !ok {
		seeded := BuiltInTemplates()
		if err := s.save(seeded); err != nil {
			return nil, err
		}
		return seeded, nil
	}
	var catalogue []types.Template
	if err := json.Unmarshal(data, &catalogue); err != nil {
		return nil, &StorageError{Message: "failed to parse catalogue", Cause: err}
	}
	return catalogue, nil
}

// save writes the whole catalogue back as one unit.
func (s *Store) save(catalogue []types.Template) error {
	data, err := json.Marshal(catalogue)
	if err != nil {
		return &StorageError{Message: "failed to serialize catalogue", Cause: err}
	}
	if err := s.storage.SetItem(StorageKey, data); err != nil {
		return &StorageError{Message: "failed to write catalogue", Cause: err}
	}
	return nil
}

// List returns all templates, built-in and custom.
func (s *Store) List() ([]types.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Get returns the template with the given ID.
func (s *Store) Get(id string) (*types.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	catalogue, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range catalogue {
		if catalogue[i].ID == id {
			return &catalogue[i], nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

// Create stores a new custom template. Identity, type, and createdAt are
// assigned here regardless of what the input carries.
func (s *Store) Create(data types.Template) (*types.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.create(data)
}

// create is the locked implementation shared by Create, Clone, and Import.
func (s *Store) create(data types.Template) (*types.Template, error) {
	if err := s.validate.Struct(&data); err != nil {
		return nil, &InvalidFormatError{Message: "template failed validation", Cause: err}
	}
	catalogue, err := s.load()
	if err != nil {
		return nil, err
	}

	data.ID = s.newID()
	data.Type = types.TemplateTypeCustom
	data.CreatedAt = s.now().UTC()
	data.UpdatedAt = time.Time{}
	if data.Sections == nil {
		data.Sections = types.DefaultSections()
	}

	catalogue = append(catalogue, data)
	if err := s.save(catalogue); err != nil {
		return nil, err
	}
	return &data, nil
}

// Update merges a patch into an existing custom template and stamps updatedAt.
// Built-in templates are immutable.
func (s *Store) Update(id string, patch types.TemplatePatch) (*types.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalogue, err := s.load()
	if err != nil {
		return nil, err
	}
	index := -1
	for i := range catalogue {
		if catalogue[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, &NotFoundError{ID: id}
	}
	if catalogue[index].IsBuiltIn() {
		return nil, &ImmutableError{ID: id, Operation: "modify"}
	}

	updated := applyPatch(catalogue[index], patch)
	updated.UpdatedAt = s.now().UTC()
	if err := s.validate.Struct(&updated); err != nil {
		return nil, &InvalidFormatError{Message: "template failed validation", Cause: err}
	}

	catalogue[index] = updated
	if err := s.save(catalogue); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a custom template. Built-in templates cannot be deleted.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalogue, err := s.load()
	if err != nil {
		return err
	}
	index := -1
	for i := range catalogue {
		if catalogue[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return &NotFoundError{ID: id}
	}
	if catalogue[index].IsBuiltIn() {
		return &ImmutableError{ID: id, Operation: "delete"}
	}

	catalogue = append(catalogue[:index], catalogue[index+1:]...)
	return s.save(catalogue)
}

// Clone copies an existing template into a new custom template. All fields
// except identity and timestamps carry over; the name defaults to
// "Copy of <original>"; clonedFrom records the source for traceability.
func (s *Store) Clone(id, newName string) (*types.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalogue, err := s.load()
	if err != nil {
		return nil, err
	}
	var source *types.Template
	for i := range catalogue {
		if catalogue[i].ID == id {
			source = &catalogue[i]
			break
		}
	}
	if source == nil {
		return nil, &NotFoundError{ID: id}
	}

	clone := *source
	clone.Sections = append([]types.Section(nil), source.Sections...)
	clone.Name = newName
	if clone.Name == "" {
		clone.Name = "Copy of " + source.Name
	}
	clone.ClonedFrom = id
	return s.create(clone)
}

// ExportOne returns the canonical serialized form of one template.
func (s *Store) ExportOne(id string) ([]byte, error) {
	template, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(template, "", "  ")
	if err != nil {
		return nil, &StorageError{Message: "failed to serialize template", Cause: err}
	}
	return data, nil
}

// Import parses a serialized template and stores it as a new custom template.
// Identity and type fields in the payload are ignored; unrecognized fields
// are discarded. The payload must at minimum carry a non-empty name.
func (s *Store) Import(serialized []byte) (*types.Template, error) {
	if err := schemas.ValidateTemplateImport(serialized); err != nil {
		return nil, &InvalidFormatError{Message: "import payload rejected", Cause: err}
	}

	var data types.Template
	if err := json.Unmarshal(serialized, &data); err != nil {
		return nil, &InvalidFormatError{Message: "import payload is not a template record", Cause: err}
	}

	// Never reintroduce a built-in or collide with an existing identifier.
	data.ID = ""
	data.Type = ""
	data.Imported = true

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.create(data)
}
