// Package testutil provides test database plumbing shared by the store,
// service and handler tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/taskdeck-dev/taskdeck/internal/models"
)

// NewDB opens an isolated in-memory sqlite database migrated with the
// application schema. Each test name gets its own shared-cache database so
// parallel tests never see each other's rows.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Project{}, &models.Task{})
	require.NoError(t, err)

	return db
}
