package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquafarm.io/steward/internal/api/middleware"
	"aquafarm.io/steward/internal/domain"
	"aquafarm.io/steward/internal/pkg/logger"
	"aquafarm.io/steward/internal/service"
	"aquafarm.io/steward/internal/store/storetest"
	"aquafarm.io/steward/internal/usecase"
)

const testTenant = "tenant-1"

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	m.Run()
}

// seedStore builds a site with a department, a tank, and a linked system.
func seedStore(tankBiomass float64) *storetest.Store {
	return storetest.New().
		AddSite(domain.Site{ID: "S", TenantID: testTenant, Name: "North Farm", IsActive: true}).
		AddDepartment(domain.Department{ID: "D", TenantID: testTenant, SiteID: "S", Name: "Grow-out", IsActive: true}).
		AddEquipment(domain.Equipment{ID: "T1", TenantID: testTenant, DepartmentID: "D", Name: "Tank 1", IsTank: true, CurrentBiomass: tankBiomass, IsActive: true}).
		AddSystem(domain.System{ID: "SYS", TenantID: testTenant, DepartmentID: "D", Name: "RAS Loop", IsActive: true})
}

// testRouter wires the server against the in-memory store and stubs the
// auth middleware with fixed identity keys.
func testRouter(st *storetest.Store, tenantID string) *gin.Engine {
	agg := service.NewAffectedAggregator(st, service.NewHierarchyResolver(st))

	srv := NewServer(ServerDeps{
		Sites:       usecase.NewDeleteSiteUseCase(st, agg),
		Departments: usecase.NewDeleteDepartmentUseCase(st, agg),
		Systems:     usecase.NewDeleteSystemUseCase(st, agg),
		Equipment:   usecase.NewDeleteEquipmentUseCase(st, agg),
	})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.Use(func(c *gin.Context) {
		if tenantID != "" {
			c.Set("tenant_id", tenantID)
			c.Set("user_id", "u-1")
		}
		c.Next()
	})
	srv.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestPreviewSiteDelete(t *testing.T) {
	r := testRouter(seedStore(0), testTenant)
	w, body := doRequest(t, r, http.MethodGet, "/api/v1/sites/S/delete-preview")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["can_delete"])
	assert.EqualValues(t, 2, body["total_count"])

	// A clean preview carries an empty blocker list, never null.
	blockers, ok := body["blockers"].([]any)
	require.True(t, ok)
	assert.Empty(t, blockers)
}

func TestPreviewSiteDelete_Blocked(t *testing.T) {
	r := testRouter(seedStore(40.5), testTenant)
	w, body := doRequest(t, r, http.MethodGet, "/api/v1/sites/S/delete-preview")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["can_delete"])
	blockers, ok := body["blockers"].([]any)
	require.True(t, ok)
	require.Len(t, blockers, 1)
	assert.Contains(t, blockers[0], "40.50 kg of active biomass")
}

func TestDeleteSite_CascadeSucceeds(t *testing.T) {
	st := seedStore(0)
	r := testRouter(st, testTenant)
	w, body := doRequest(t, r, http.MethodDelete, "/api/v1/sites/S?cascade=true")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["deleted"])

	site := st.SiteState("S")
	require.NotNil(t, site)
	assert.True(t, site.IsDeleted)
}

func TestDeleteSite_WithoutCascadeConflicts(t *testing.T) {
	r := testRouter(seedStore(0), testTenant)
	w, body := doRequest(t, r, http.MethodDelete, "/api/v1/sites/S")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "HAS_DEPENDENTS", body["code"])
}

func TestDeleteSite_BlockedReturnsBlockerParams(t *testing.T) {
	r := testRouter(seedStore(12.5), testTenant)
	w, body := doRequest(t, r, http.MethodDelete, "/api/v1/sites/S?cascade=true")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DELETE_BLOCKED", body["code"])

	params, ok := body["params"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, params, "blockers")
}

func TestDeleteSite_NotFound(t *testing.T) {
	r := testRouter(seedStore(0), testTenant)
	w, body := doRequest(t, r, http.MethodDelete, "/api/v1/sites/missing?cascade=true")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SITE_NOT_FOUND", body["code"])
}

func TestDelete_TenantIsolation(t *testing.T) {
	// A token for another tenant must not see tenant-1 rows.
	r := testRouter(seedStore(0), "tenant-2")
	w, body := doRequest(t, r, http.MethodDelete, "/api/v1/sites/S?cascade=true")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SITE_NOT_FOUND", body["code"])
}

func TestDelete_MissingTenantRejected(t *testing.T) {
	r := testRouter(seedStore(0), "")
	w, body := doRequest(t, r, http.MethodDelete, "/api/v1/sites/S?cascade=true")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_FAILED", body["code"])
}

func TestDeleteDepartment_Cascade(t *testing.T) {
	st := seedStore(0)
	r := testRouter(st, testTenant)
	w, body := doRequest(t, r, http.MethodDelete, "/api/v1/departments/D?cascade=true")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["deleted"])

	tank := st.EquipmentState("T1")
	require.NotNil(t, tank)
	assert.True(t, tank.IsDeleted)

	// The system is detached, not deleted.
	sys := st.SystemState("SYS")
	require.NotNil(t, sys)
	assert.False(t, sys.IsDeleted)
	assert.Empty(t, sys.DepartmentID)
}

func TestDeleteSystem_Preview(t *testing.T) {
	r := testRouter(seedStore(0), testTenant)
	w, body := doRequest(t, r, http.MethodGet, "/api/v1/systems/SYS/delete-preview")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["can_delete"])
}

func TestDeleteEquipment_Standalone(t *testing.T) {
	st := seedStore(0)
	r := testRouter(st, testTenant)
	w, body := doRequest(t, r, http.MethodDelete, "/api/v1/equipment/T1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["deleted"])
}
