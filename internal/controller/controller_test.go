package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/aptiprep/internal/apperr"
	"github.com/lshigami/aptiprep/internal/session"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("bad: %w", apperr.ErrInvalidInput), http.StatusBadRequest},
		{session.ErrOutOfRange, http.StatusBadRequest},
		{fmt.Errorf("re-enter fullscreen: %w", apperr.ErrPermission), http.StatusForbidden},
		{fmt.Errorf("attempt 3: %w", apperr.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("attempt 3 already submitted: %w", apperr.ErrConflict), http.StatusConflict},
		{session.ErrLocked, http.StatusConflict},
		{session.ErrNothingToRetry, http.StatusConflict},
		{fmt.Errorf("save: %w: %w", apperr.ErrTransientPersistence, errors.New("timeout")), http.StatusServiceUnavailable},
		{fmt.Errorf("rank: %w", apperr.ErrComputationSkipped), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.err); got != tt.want {
			t.Errorf("StatusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestParamID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		path   string
		ok     bool
		status int
	}{
		{"/items/12", true, http.StatusOK},
		{"/items/0", false, http.StatusBadRequest},
		{"/items/abc", false, http.StatusBadRequest},
	}
	for _, tt := range tests {
		r := gin.New()
		var gotOK bool
		r.GET("/items/:id", func(ctx *gin.Context) {
			var id uint
			id, gotOK = ParamID(ctx, "id", "Item ID")
			if gotOK {
				ctx.JSON(http.StatusOK, gin.H{"id": id})
			}
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if gotOK != tt.ok || w.Code != tt.status {
			t.Errorf("%s: ok=%v status=%d, want ok=%v status=%d", tt.path, gotOK, w.Code, tt.ok, tt.status)
		}
	}
}
