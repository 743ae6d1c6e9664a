package handler

import (
    "context"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/model"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/registry"
    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/store"
)

func userFixture(t *testing.T) *UserHandler {
    t.Helper()
    reg := registry.NewUserRegistry(context.Background(), store.NewMemoryStore(), []model.User{
        {ID: "u1", Email: "p@example.com", Name: "P", Role: model.RolePlayer, Status: model.UserActive},
        {ID: "u2", Email: "o@example.com", Name: "O", Role: model.RoleOwner, Status: model.UserBanned},
    })
    return NewUserHandler(reg)
}

func adminGet(t *testing.T, h echo.HandlerFunc, target string) *httptest.ResponseRecorder {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, target, nil)
    rec := httptest.NewRecorder()
    require.NoError(t, h(e.NewContext(req, rec)))
    return rec
}

func TestUserListFilters(t *testing.T) {
    h := userFixture(t)

    rec := adminGet(t, h.List, "/v1/admin/users")
    require.Equal(t, http.StatusOK, rec.Code)
    var all []model.User
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
    assert.Len(t, all, 2)

    rec = adminGet(t, h.List, "/v1/admin/users?status=banned")
    var banned []model.User
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &banned))
    require.Len(t, banned, 1)
    assert.Equal(t, "u2", banned[0].ID)

    rec = adminGet(t, h.List, "/v1/admin/users?role=player")
    var players []model.User
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &players))
    require.Len(t, players, 1)
    assert.Equal(t, "u1", players[0].ID)

    rec = adminGet(t, h.List, "/v1/admin/users?role=superuser")
    assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBanEndpointFlipsStatus(t *testing.T) {
    h := userFixture(t)
    e := echo.New()

    req := httptest.NewRequest(http.MethodPost, "/", nil)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    c.SetPath("/v1/admin/users/:id/ban")
    c.SetParamNames("id")
    c.SetParamValues("u1")
    require.NoError(t, h.Ban(c))
    require.Equal(t, http.StatusOK, rec.Code)

    var u model.User
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
    assert.Equal(t, model.UserBanned, u.Status)
}

func TestBanUnknownUser(t *testing.T) {
    h := userFixture(t)
    e := echo.New()

    req := httptest.NewRequest(http.MethodPost, "/", nil)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    c.SetPath("/v1/admin/users/:id/ban")
    c.SetParamNames("id")
    c.SetParamValues("ghost")
    require.NoError(t, h.Ban(c))
    assert.Equal(t, http.StatusNotFound, rec.Code)
}
