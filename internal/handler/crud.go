package handler

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/eranix04/Quick-Court-Sports-Booking-Platform/internal/repository"
)

// CrudHandler is the relational passthrough: generic list, insert,
// update and delete over the whitelisted tables, mounted at the same
// top-level paths the legacy API used. Rows are untyped column maps.
type CrudHandler struct {
    Repo *repository.TableRepo
}

func NewCrudHandler(r *repository.TableRepo) *CrudHandler {
    return &CrudHandler{Repo: r}
}

// List returns every row of the resource's table.
func (h *CrudHandler) List(c echo.Context) error {
    t, err := repository.Resolve(c.Param("resource"))
    if err != nil {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown resource"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    rows, err := h.Repo.List(ctx, t)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, rows)
}

// Create inserts one row from the JSON body.
func (h *CrudHandler) Create(c echo.Context) error {
    t, err := repository.Resolve(c.Param("resource"))
    if err != nil {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown resource"})
    }
    var row repository.Row
    if err := c.Bind(&row); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    id, err := h.Repo.Insert(ctx, t, row)
    if err != nil {
        if errors.Is(err, repository.ErrEmptyRow) {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "no columns provided"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "insert failed"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"insertId": id})
}

// Update patches the row with the given key value.
func (h *CrudHandler) Update(c echo.Context) error {
    t, err := repository.Resolve(c.Param("resource"))
    if err != nil {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown resource"})
    }
    var row repository.Row
    if err := c.Bind(&row); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Repo.Update(ctx, t, c.Param("id"), row); err != nil {
        switch {
        case errors.Is(err, repository.ErrRowNotFound):
            return c.JSON(http.StatusNotFound, echo.Map{"error": "row not found"})
        case errors.Is(err, repository.ErrEmptyRow):
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "no columns provided"})
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
        }
    }
    return c.JSON(http.StatusOK, echo.Map{"updated": true})
}

// Delete removes the row with the given key value.
func (h *CrudHandler) Delete(c echo.Context) error {
    t, err := repository.Resolve(c.Param("resource"))
    if err != nil {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown resource"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()
    if err := h.Repo.Delete(ctx, t, c.Param("id")); err != nil {
        if errors.Is(err, repository.ErrRowNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "row not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"deleted": true})
}
