package furnishing_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"room-furnisher/feature/furnishing"
	"room-furnisher/feature/furnishing/catalog"
	"room-furnisher/feature/furnishing/placement"
	"room-furnisher/feature/furnishing/source"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T, src source.Source) (*fiber.App, func() int) {
	t.Helper()
	m, db := setupModel(t)
	seedOffice(t, m, db)

	svc := furnishing.NewService(src, m, placement.DefaultConfig(), time.Minute, "feet", zap.NewNop())
	app := fiber.New()
	furnishing.NewHandler(svc).RegisterRoutes(app)

	instances := func() int {
		var n int64
		require.NoError(t, db.Table("family_instances").Count(&n).Error)
		return int(n)
	}
	return app, instances
}

func decode(t *testing.T, body io.Reader, v any) {
	t.Helper()
	b, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, v))
}

func TestHandleGetCatalog(t *testing.T) {
	app, _ := setupApp(t, source.Builtin())

	resp, err := app.Test(httptest.NewRequest("GET", "/furnishing/catalog", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var items []catalog.ItemDescriptor
	decode(t, resp.Body, &items)
	assert.Len(t, items, 15)
	assert.Equal(t, "desk", items[0].Name)
}

func TestHandleGetSets(t *testing.T) {
	app, _ := setupApp(t, source.Builtin())

	resp, err := app.Test(httptest.NewRequest("GET", "/furnishing/sets", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var sets []catalog.SetDefinition
	decode(t, resp.Body, &sets)
	assert.Len(t, sets, 9)
}

func TestHandleGetSet(t *testing.T) {
	app, _ := setupApp(t, source.Builtin())

	t.Run("Known Code", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/furnishing/sets/B2", nil), 2000)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var expansions []furnishing.SetExpansion
		decode(t, resp.Body, &expansions)
		require.Len(t, expansions, 1)
		assert.Equal(t, 10, expansions[0].ItemCount)
		assert.Equal(t, "Classroom - Medium", expansions[0].RoomType)
	})

	t.Run("Unknown Code", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/furnishing/sets/Z9", nil), 2000)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestHandleRun(t *testing.T) {
	t.Run("Dry Run", func(t *testing.T) {
		app, instances := setupApp(t, source.Builtin())

		resp, err := app.Test(httptest.NewRequest("POST", "/furnishing/run?dry_run=true", nil), 5000)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var report furnishing.RunReport
		decode(t, resp.Body, &report)
		assert.True(t, report.DryRun)
		assert.Equal(t, 5, report.Placed)
		assert.Zero(t, instances())
	})

	t.Run("Commit", func(t *testing.T) {
		app, instances := setupApp(t, source.Builtin())

		resp, err := app.Test(httptest.NewRequest("POST", "/furnishing/run", nil), 5000)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var report furnishing.RunReport
		decode(t, resp.Body, &report)
		assert.Equal(t, 5, report.Placed)
		assert.Equal(t, 1, report.RoomsFurnished)
		require.Len(t, report.Locations, 1)
		assert.Equal(t, "101", report.Locations[0].ID)
		assert.Equal(t, 5, instances())

		resp, err = app.Test(httptest.NewRequest("GET", "/furnishing/rooms", nil), 2000)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("Broken Source", func(t *testing.T) {
		app, _ := setupApp(t, source.NewFile("/nonexistent/furnishing.yaml"))

		resp, err := app.Test(httptest.NewRequest("POST", "/furnishing/run", nil), 2000)
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)

		var body map[string]string
		decode(t, resp.Body, &body)
		assert.Contains(t, body["error"], "load furniture tables")
	})
}
