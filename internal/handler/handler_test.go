package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/Matoxx01/mikes-backend/internal/handler"
	"github.com/Matoxx01/mikes-backend/internal/model"
	"github.com/Matoxx01/mikes-backend/internal/store"
	"github.com/Matoxx01/mikes-backend/pkg/config"
	"github.com/Matoxx01/mikes-backend/pkg/database"
	"github.com/Matoxx01/mikes-backend/pkg/jwtutil"
	"github.com/Matoxx01/mikes-backend/prometheus"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	// Handlers record metrics; register them once for the whole binary
	prometheus.InitMetrics(&config.Config{Metrics: config.MetricsConfig{Prefix: "test"}})
	os.Exit(m.Run())
}

func newTestHandler(t *testing.T) (*handler.Handler, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	jwtutil.Initialize(&config.AuthConfig{JWTSigningKey: "test-key", ExpirationHours: 1})
	return handler.New(store.New(db, 0)), db
}

func jsonRequest(method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func TestLogin(t *testing.T) {
	h, db := newTestHandler(t)
	e := echo.New()

	require.NoError(t, db.Create(&model.Employee{Name: "maria", Password: "s3cret", Role: "admin"}).Error)

	t.Run("success returns role, name and token", func(t *testing.T) {
		req, rec := jsonRequest(http.MethodPost, "/login", `{"name":"maria","password":"s3cret"}`)
		require.NoError(t, h.Login(e.NewContext(req, rec)))
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "admin", body["role"])
		assert.Equal(t, "maria", body["name"])
		assert.NotEmpty(t, body["token"])
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		req, rec := jsonRequest(http.MethodPost, "/login", `{"name":"maria","password":"nope"}`)
		require.NoError(t, h.Login(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown name is unauthorized", func(t *testing.T) {
		req, rec := jsonRequest(http.MethodPost, "/login", `{"name":"ghost","password":"s3cret"}`)
		require.NoError(t, h.Login(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing credentials are a bad request", func(t *testing.T) {
		req, rec := jsonRequest(http.MethodPost, "/login", `{"name":"maria"}`)
		require.NoError(t, h.Login(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBulkImportEndpoint(t *testing.T) {
	h, db := newTestHandler(t)
	e := echo.New()

	client := model.Client{Name: "Acme"}
	require.NoError(t, db.Create(&client).Error)
	nomina := model.Nomina{Name: "2024-Q1", ClientID: client.ID}
	require.NoError(t, db.Create(&nomina).Error)

	t.Run("valid payload reports exact counts", func(t *testing.T) {
		payload := `{
			"nominaId": ` + itoa(nomina.ID) + `,
			"clientId": ` + itoa(client.ID) + `,
			"users": [
				{"rut": "11111111-1", "name": "Ana", "lastName": "Rojas",
				 "products": [{"name": "Jacket", "sku": "JKT-1", "quantity": 1}]},
				{"rut": "22222222-2", "name": "Luis", "lastName": "Soto"}
			]
		}`
		req, rec := jsonRequest(http.MethodPost, "/import_bulk", payload)
		require.NoError(t, h.BulkImport(e.NewContext(req, rec)))
		require.Equal(t, http.StatusOK, rec.Code)

		var result store.BulkImportResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, 2, result.InsertedUsers)
		assert.Equal(t, 1, result.InsertedProducts)
	})

	t.Run("duplicate rut is rejected without partial rows", func(t *testing.T) {
		payload := `{
			"nominaId": ` + itoa(nomina.ID) + `,
			"clientId": ` + itoa(client.ID) + `,
			"users": [
				{"rut": "33333333-3", "name": "Eva"},
				{"rut": "33333333-3", "name": "Eva Again"}
			]
		}`
		req, rec := jsonRequest(http.MethodPost, "/import_bulk", payload)
		require.NoError(t, h.BulkImport(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var n int64
		require.NoError(t, db.Model(&model.User{}).Where("rut = ?", "33333333-3").Count(&n).Error)
		assert.Zero(t, n)
	})

	t.Run("missing scope is a bad request", func(t *testing.T) {
		req, rec := jsonRequest(http.MethodPost, "/import_bulk", `{"users":[{"rut":"1-9"}]}`)
		require.NoError(t, h.BulkImport(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteNominaEndpoint(t *testing.T) {
	h, db := newTestHandler(t)
	e := echo.New()

	client := model.Client{Name: "Acme"}
	require.NoError(t, db.Create(&client).Error)
	nomina := model.Nomina{Name: "only", ClientID: client.ID}
	require.NoError(t, db.Create(&nomina).Error)

	req := httptest.NewRequest(http.MethodDelete, "/nomina/"+itoa(nomina.ID)+"?clientId="+itoa(client.ID), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/nomina/:id")
	c.SetParamNames("id")
	c.SetParamValues(itoa(nomina.ID))

	require.NoError(t, h.DeleteNomina(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var n int64
	require.NoError(t, db.Model(&model.Client{}).Count(&n).Error)
	assert.Zero(t, n)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
