package templates

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-generator/internal/types"
)

// newTestStore returns a store over fresh in-memory storage with a frozen
// clock and predictable IDs.
func newTestStore(t *testing.T) (*Store, *MemStorage) {
	t.Helper()
	storage := NewMemStorage()
	store := NewStore(storage)
	store.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	counter := 0
	store.newID = func() string {
		counter++
		return "id_" + string(rune('a'+counter-1))
	}
	return store, storage
}

func TestList_SeedsBuiltInsOnFirstAccess(t *testing.T) {
	store, storage := newTestStore(t)

	catalogue, err := store.List()
	require.NoError(t, err)
	require.Len(t, catalogue, 3)

	ids := []string{catalogue[0].ID, catalogue[1].ID, catalogue[2].ID}
	assert.Equal(t, []string{"modern", "classic", "minimal"}, ids)
	for _, template := range catalogue {
		assert.Equal(t, types.TemplateTypeBuiltIn, template.Type)
		assert.Len(t, template.Sections, 8)
	}

	// Seeding persisted the catalogue under the well-known key.
	_, ok, err := storage.GetItem(StorageKey)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGet_NotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get("nope")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope", notFound.ID)
}

func TestCreate_AssignsIdentityAndType(t *testing.T) {
	store, _ := newTestStore(t)

	created, err := store.Create(types.Template{
		Name: "My Template",
		// Identity and type in the input are ignored.
		ID:   "modern",
		Type: types.TemplateTypeBuiltIn,
	})
	require.NoError(t, err)

	assert.Equal(t, "id_a", created.ID)
	assert.Equal(t, types.TemplateTypeCustom, created.Type)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Len(t, created.Sections, 8, "sections default when not provided")

	catalogue, err := store.List()
	require.NoError(t, err)
	assert.Len(t, catalogue, 4)
}

func TestCreate_RequiresName(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Create(types.Template{})
	var invalid *InvalidFormatError
	require.ErrorAs(t, err, &invalid)
}

func TestUpdate_MergesRecognizedFields(t *testing.T) {
	store, _ := newTestStore(t)

	created, err := store.Create(types.Template{Name: "Draft", Description: "first cut"})
	require.NoError(t, err)

	name := "Final"
	styles := types.StyleConfig{PrimaryColor: "#112233"}
	updated, err := store.Update(created.ID, types.TemplatePatch{Name: &name, Styles: &styles})
	require.NoError(t, err)

	assert.Equal(t, "Final", updated.Name)
	assert.Equal(t, "first cut", updated.Description, "nil patch fields leave stored values untouched")
	assert.Equal(t, "#112233", updated.Styles.PrimaryColor)
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestUpdate_BuiltInIsImmutable(t *testing.T) {
	store, storage := newTestStore(t)
	_, err := store.List()
	require.NoError(t, err)
	before, _, err := storage.GetItem(StorageKey)
	require.NoError(t, err)

	name := "Hacked"
	_, err = store.Update("modern", types.TemplatePatch{Name: &name})
	var immutable *ImmutableError
	require.ErrorAs(t, err, &immutable)

	after, _, err := storage.GetItem(StorageKey)
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed update leaves the catalogue byte-identical")
}

func TestUpdate_NotFound(t *testing.T) {
	store, _ := newTestStore(t)

	name := "x"
	_, err := store.Update("missing", types.TemplatePatch{Name: &name})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDelete_CustomTemplate(t *testing.T) {
	store, _ := newTestStore(t)

	created, err := store.Create(types.Template{Name: "Temp"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(created.ID))

	_, err = store.Get(created.ID)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestDelete_BuiltInIsImmutable(t *testing.T) {
	store, storage := newTestStore(t)
	_, err := store.List()
	require.NoError(t, err)
	before, _, err := storage.GetItem(StorageKey)
	require.NoError(t, err)

	err = store.Delete("modern")
	var immutable *ImmutableError
	require.ErrorAs(t, err, &immutable)
	assert.Equal(t, "delete", immutable.Operation)

	after, _, err := storage.GetItem(StorageKey)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestClone_ProducesIndependentCustomCopy(t *testing.T) {
	store, _ := newTestStore(t)

	clone, err := store.Clone("modern", "")
	require.NoError(t, err)

	assert.Equal(t, "Copy of Modern", clone.Name)
	assert.Equal(t, types.TemplateTypeCustom, clone.Type)
	assert.Equal(t, "modern", clone.ClonedFrom)
	assert.NotEqual(t, "modern", clone.ID)

	// Mutating the clone never affects the source.
	sections := append([]types.Section(nil), clone.Sections...)
	sections[0].Enabled = false
	_, err = store.Update(clone.ID, types.TemplatePatch{Sections: sections})
	require.NoError(t, err)

	original, err := store.Get("modern")
	require.NoError(t, err)
	assert.True(t, original.Sections[0].Enabled)
}

func TestClone_NotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Clone("missing", "")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestClone_ExplicitName(t *testing.T) {
	store, _ := newTestStore(t)

	clone, err := store.Clone("minimal", "Conference Handout")
	require.NoError(t, err)
	assert.Equal(t, "Conference Handout", clone.Name)
}

func TestExportImport_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	created, err := store.Create(types.Template{
		Name:        "Round Trip",
		Description: "travels well",
		Styles:      types.StyleConfig{PrimaryColor: "#abcdef", SectionSpacing: "large"},
	})
	require.NoError(t, err)

	exported, err := store.ExportOne(created.ID)
	require.NoError(t, err)

	imported, err := store.Import(exported)
	require.NoError(t, err)

	assert.NotEqual(t, created.ID, imported.ID)
	assert.Equal(t, types.TemplateTypeCustom, imported.Type)
	assert.True(t, imported.Imported)
	assert.Equal(t, created.Name, imported.Name)
	assert.Equal(t, created.Description, imported.Description)
	assert.Equal(t, created.Styles, imported.Styles)
	assert.Equal(t, created.Sections, imported.Sections)
}

func TestImport_NeverReintroducesBuiltIn(t *testing.T) {
	store, _ := newTestStore(t)

	payload := []byte(`{"id": "modern", "type": "built-in", "name": "Sneaky"}`)
	imported, err := store.Import(payload)
	require.NoError(t, err)

	assert.NotEqual(t, "modern", imported.ID)
	assert.Equal(t, types.TemplateTypeCustom, imported.Type)
	assert.True(t, imported.Imported)
}

func TestImport_DiscardsUnrecognizedFields(t *testing.T) {
	store, _ := newTestStore(t)

	payload := []byte(`{"name": "Lean", "favoriteAnimal": "capuchin"}`)
	imported, err := store.Import(payload)
	require.NoError(t, err)

	exported, err := store.ExportOne(imported.ID)
	require.NoError(t, err)
	assert.NotContains(t, string(exported), "favoriteAnimal")
}

func TestImport_RejectsMissingName(t *testing.T) {
	store, _ := newTestStore(t)

	for _, payload := range []string{`{}`, `{"name": ""}`, `not json`, `[1, 2]`} {
		_, err := store.Import([]byte(payload))
		var invalid *InvalidFormatError
		assert.ErrorAs(t, err, &invalid, "payload %q must be rejected", payload)
	}
}

func TestExportOne_NotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.ExportOne("missing")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestStore_PersistsWholeCatalogueAsJSONArray(t *testing.T) {
	store, storage := newTestStore(t)

	_, err := store.Create(types.Template{Name: "Extra"})
	require.NoError(t, err)

	raw, ok, err := storage.GetItem(StorageKey)
	require.NoError(t, err)
	require.True(t, ok)

	var catalogue []types.Template
	require.NoError(t, json.Unmarshal(raw, &catalogue))
	assert.Len(t, catalogue, 4)
}

// brokenStorage fails every write after construction, to verify surfaced
// storage errors.
type brokenStorage struct{}

func (brokenStorage) GetItem(string) ([]byte, bool, error) { return nil, false, nil }
func (brokenStorage) SetItem(string, []byte) error {
	return errors.New("disk full")
}

func TestStore_SurfacesStorageErrors(t *testing.T) {
	store := NewStore(brokenStorage{})

	_, err := store.List()
	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
}
