package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/logger"
	"github.com/AutoHubWeb/AdminPanel/internal/messaging"
	"github.com/AutoHubWeb/AdminPanel/internal/storage/memory"
)

func newToolService(store *memory.Store) *ToolService {
	return NewToolService(
		memory.NewToolRepository(store),
		memory.NewFileRepository(store),
		messaging.NopProducer{},
		logger.NewNop(),
	)
}

func TestToolServiceCreate(t *testing.T) {
	store := memory.NewStore()
	svc := newToolService(store)

	tool, err := svc.Create(entities.CreateToolDTO{
		Code: "AF",
		Name: "Auto Farm Pro",
		Plans: []entities.ToolPlanDTO{
			{Name: "1 Month", Price: 9.99, Duration: 30},
			{Name: "Lifetime", Price: 49.99, Duration: -1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "auto-farm-pro", tool.Slug)
	assert.Equal(t, entities.StatusActive, tool.Status)
	require.Len(t, tool.Plans, 2)
	assert.Equal(t, "1 Month", tool.Plans[0].Name)
	assert.NotNil(t, tool.Images)
	assert.Empty(t, tool.Images)
}

func TestToolServiceCreateResolvesImages(t *testing.T) {
	store := memory.NewStore()
	svc := newToolService(store)

	fileRepo := memory.NewFileRepository(store)
	stored, err := fileRepo.Create(entities.StoredFile{
		ID:        "f1",
		FileName:  "cover.png",
		FileUrl:   "http://localhost:9000/admin-files/cover.png",
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	tool, err := svc.Create(entities.CreateToolDTO{
		Code:    "AF",
		Name:    "Auto Farm",
		FileIds: []string{stored.ID},
	})
	require.NoError(t, err)

	require.Len(t, tool.Images, 1)
	assert.Equal(t, stored.FileUrl, tool.Images[0].FileUrl)
}

func TestToolServiceCreateRejectsUnknownFileIds(t *testing.T) {
	svc := newToolService(memory.NewStore())

	_, err := svc.Create(entities.CreateToolDTO{
		Code:    "AF",
		Name:    "Auto Farm",
		FileIds: []string{"missing"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, "Some uploaded files were not found", err.Error())
}

func TestToolServiceUpdateRebuildsSlug(t *testing.T) {
	store := memory.NewStore()
	svc := newToolService(store)

	tool, err := svc.Create(entities.CreateToolDTO{Code: "AF", Name: "Auto Farm"})
	require.NoError(t, err)

	updated, err := svc.Update(tool.ID, entities.UpdateToolDTO{Name: "Proxy Manager"})
	require.NoError(t, err)
	assert.Equal(t, "proxy-manager", updated.Slug)
}

func TestToolServiceActivatePause(t *testing.T) {
	store := memory.NewStore()
	svc := newToolService(store)

	tool, err := svc.Create(entities.CreateToolDTO{Code: "AF", Name: "Auto Farm"})
	require.NoError(t, err)

	require.NoError(t, svc.Pause(tool.ID))
	paused, err := svc.FindByID(tool.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPaused, paused.Status)

	// 幂等：重复暂停不报错
	require.NoError(t, svc.Pause(tool.ID))

	require.NoError(t, svc.Activate(tool.ID))
	active, err := svc.FindByID(tool.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusActive, active.Status)
}

func TestToolServiceDeleteNotFound(t *testing.T) {
	svc := newToolService(memory.NewStore())

	err := svc.Delete("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "auto-farm", Slugify("Auto Farm"))
	assert.Equal(t, "vps-basic-2gb", Slugify("  VPS Basic 2GB  "))
	assert.Equal(t, "a-b", Slugify("A---B"))
}
