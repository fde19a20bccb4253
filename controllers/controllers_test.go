package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TestRespondCreateError_DuplicateKeyIsConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	// A concurrent insert can slip past the email pre-check and hit the
	// unique constraint instead.
	respondCreateError(c, gorm.ErrDuplicatedKey, "An account with this email already exists", "Failed to create user")

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for a duplicate key, got %d", w.Code)
	}
}

func TestRespondCreateError_OtherErrorsAreInternal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondCreateError(c, errors.New("connection reset"), "conflict", "Failed to create user")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for a non-duplicate error, got %d", w.Code)
	}
}

func TestSettingValue(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"string", "Ink & Iron", "Ink & Iron"},
		{"bool", true, "true"},
		// JSON numbers decode to float64; whole values must not gain a decimal.
		{"number", float64(10), "10"},
		{"array", []interface{}{"Sunday", "Monday"}, "Sunday,Monday"},
		{"empty array", []interface{}{}, ""},
	}

	for _, tc := range cases {
		if got := settingValue(tc.value); got != tc.want {
			t.Errorf("%s: settingValue(%v) = %q, want %q", tc.name, tc.value, got, tc.want)
		}
	}
}
