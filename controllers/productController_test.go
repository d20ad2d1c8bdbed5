package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/sisies/sisies-api/initializers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	previous := initializers.DB
	initializers.DB = db
	return mock, func() {
		initializers.DB = previous
		sqlDB.Close()
	}
}

func TestGetProductsCountAppliesSearchFilter(t *testing.T) {
	mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM `products` WHERE name LIKE (.+) AND category = (.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category"}))
	// The count must carry the search filter too, or pagination totals lie.
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `products` WHERE name LIKE (.+) AND category = (.+)").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/product", GetProducts)

	req := httptest.NewRequest(http.MethodGet, "/product?search=dress&category=linen", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	metadata, ok := body["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), metadata["total"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadAWSConfigUsesConfiguredRegion(t *testing.T) {
	cfg, err := loadAWSConfig("eu-central-1")
	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", cfg.Region)
}
