package common

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"randomizer-tools/internal/domain"
)

func TestDecodeJSON(t *testing.T) {
	var body ItemsRequest
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"items":["a","b"]}`))
	require.NoError(t, DecodeJSON(req, &body))
	require.Equal(t, []string{"a", "b"}, body.Items)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	var httpErr *HTTPError
	require.ErrorAs(t, DecodeJSON(req, &body), &httpErr)
	require.Equal(t, "INVALID_BODY", httpErr.code)
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?sides=20&bad=x", nil)

	value, err := QueryInt(req, "sides", 6)
	require.NoError(t, err)
	require.Equal(t, 20, value)

	value, err = QueryInt(req, "count", 1)
	require.NoError(t, err)
	require.Equal(t, 1, value)

	_, err = QueryInt(req, "bad", 0)
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusBadRequest, httpErr.status)
	require.Equal(t, "VALIDATION_ERROR", httpErr.code)
}

func TestRequiredQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?wheel_id=w1&min=-3", nil)

	id, err := RequiredQuery(req, "wheel_id")
	require.NoError(t, err)
	require.Equal(t, "w1", id)

	_, err = RequiredQuery(req, "name")
	require.Error(t, err)

	lower, err := RequiredQueryInt(req, "min")
	require.NoError(t, err)
	require.Equal(t, -3, lower)

	_, err = RequiredQueryInt(req, "max")
	require.Error(t, err)
}

func TestToDomainEntries(t *testing.T) {
	entries := ToDomainEntries([]EntryRequest{{Name: "a"}, {Name: "b"}})
	require.Equal(t, []string{"a", "b"}, domain.Names(entries))
	require.NotNil(t, ToDomainEntries(nil))
	require.Equal(t, []domain.Spin{}, NonNilSpins(nil))
}
