package drivers

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/freightdesk/backoffice/internal/repo"
	"github.com/freightdesk/backoffice/pkg/db/models"
)

func TestFindDriverIsTenantScoped(t *testing.T) {
	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.Exec(`
CREATE TABLE IF NOT EXISTS drivers (
  id TEXT PRIMARY KEY,
  tenant_id TEXT NOT NULL,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  phone TEXT,
  status TEXT NOT NULL DEFAULT 'active',
  created_at DATETIME,
  updated_at DATETIME
);`).Error)

	tenant := uuid.New()
	driver := models.Driver{ID: uuid.New(), TenantID: tenant, FirstName: "Marta", LastName: "Okafor"}
	require.NoError(t, conn.Create(&driver).Error)

	r := NewRepository(repo.NewBase(conn))
	got, err := r.FindDriver(context.Background(), tenant, driver.ID)
	require.NoError(t, err)
	require.Equal(t, "Okafor", got.LastName)
	require.Equal(t, "active", got.Status)

	_, err = r.FindDriver(context.Background(), uuid.New(), driver.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
