package processor

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TechSynnovate-com/Rentnova-sub002/config"
	"github.com/TechSynnovate-com/Rentnova-sub002/internal/database"
	"github.com/TechSynnovate-com/Rentnova-sub002/internal/models"
	"github.com/TechSynnovate-com/Rentnova-sub002/internal/queue"
)

func setupTestDB(t *testing.T) (string, *database.Database) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "rentnova_test.db")

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })

	return dbPath, db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.BatchProcessing.ProcessorCount = 2
	cfg.BatchProcessing.MaxRetries = 1
	cfg.BatchProcessing.RetryDelay = 0
	return cfg
}

func TestNewBatchProcessor(t *testing.T) {
	dbPath, _ := setupTestDB(t)
	gormDB, err := database.OpenGorm(dbPath)
	require.NoError(t, err)

	q := queue.NewListingQueue(10, logrus.New())
	cfg := testConfig()

	p := NewBatchProcessor(gormDB, q, cfg, logrus.New())
	assert.NotNil(t, p)
	assert.Equal(t, gormDB, p.db)
	assert.Equal(t, q, p.queue)
	assert.Equal(t, cfg, p.config)
}

func TestBatchProcessor_ProcessBatch(t *testing.T) {
	dbPath, db := setupTestDB(t)
	gormDB, err := database.OpenGorm(dbPath)
	require.NoError(t, err)

	q := queue.NewListingQueue(10, logrus.New())
	p := NewBatchProcessor(gormDB, q, testConfig(), logrus.New())

	now := time.Now()
	batch := []*models.Property{
		{ID: "l1", Address: "24 Marina Road", City: "Lagos", Price: 450000, AvailableFrom: now},
		{ID: "l2", Address: "5 Allen Avenue", City: "Ikeja", Price: 300000, AvailableFrom: now},
	}

	require.NoError(t, p.processBatch(batch))

	stored, err := db.GetAllProperties("")
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	// A repeated batch upserts rather than duplicating.
	batch[0].Price = 500000
	require.NoError(t, p.processBatch(batch))

	stored, err = db.GetAllProperties("lagos")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 500000.0, stored[0].Price)
}

func TestBatchProcessor_StartStop(t *testing.T) {
	dbPath, db := setupTestDB(t)
	gormDB, err := database.OpenGorm(dbPath)
	require.NoError(t, err)

	q := queue.NewListingQueue(10, logrus.New())
	p := NewBatchProcessor(gormDB, q, testConfig(), logrus.New())

	p.Start()
	q.Start()

	require.NoError(t, q.Push([]*models.Property{{ID: "l1", City: "Lagos", AvailableFrom: time.Now()}}))
	time.Sleep(200 * time.Millisecond)

	p.Stop()
	q.Close()
	assert.True(t, q.IsClosed())

	stored, err := db.GetAllProperties("")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}
