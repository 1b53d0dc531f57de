package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
)

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Jo"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "Jo", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Jo","admin":true}`))
	assert.Error(t, DecodeJSON(r, &dst), "unknown fields are rejected")

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestRespondValidationErrors(t *testing.T) {
	w := httptest.NewRecorder()
	errs := domain.ValidationErrors{{Field: "name", Message: "zu kurz"}}

	RespondValidationErrors(w, "Bitte prüfen Sie Ihre Eingaben.", errs)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, errs, domain.ValidationErrors(body.Fields))
}

func TestRespondInternalError_HidesDetails(t *testing.T) {
	w := httptest.NewRecorder()
	RespondInternalError(w)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"`+msgInternalError+`"}`, w.Body.String())
}
