package bootstrap_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/km-arc/go-laravel-telephone/bootstrap"
	"github.com/km-arc/go-laravel-telephone/framework/app"
	"github.com/km-arc/go-laravel-telephone/framework/http/validation"
	"github.com/km-arc/go-laravel-telephone/framework/log"
	"github.com/km-arc/go-laravel-telephone/telephone"
)

func newApp(t *testing.T) (*app.Application, *observer.ObservedLogs) {
	t.Helper()
	t.Setenv("APP_ENV", "testing")
	t.Setenv("FIELDS_CONFIG", "testdata/fields.yaml")
	t.Setenv("TELEPHONE_DEFAULT_COUNTRY", "AU")
	t.Setenv("TELEPHONE_SHOW_COUNTRY_SELECTOR", "false")

	core, logs := observer.New(zap.DebugLevel)
	application := bootstrap.App("testdata/missing.env")
	application.Instance("log", log.Wrap(zap.New(core)))
	return application, logs
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestApp_LoadsFieldsFromDefinitions(t *testing.T) {
	application, logs := newApp(t)
	application.Boot()

	registry := application.Fields()
	assert.Equal(t, []string{"mobile", "office"}, registry.Handles())

	office, ok := registry.Get("office")
	require.True(t, ok)
	settings := office.(*telephone.Field).Settings()
	assert.Equal(t, "GB", settings.DefaultCountryCode)
	assert.True(t, settings.ShowCountrySelector)

	mobile, _ := registry.Get("mobile")
	assert.Equal(t, "AU", mobile.(*telephone.Field).Settings().DefaultCountryCode)

	failed := logs.FilterMessage("field_build_failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "broken", failed[0].ContextMap()["field"])
}

func TestApp_Routes(t *testing.T) {
	application, _ := newApp(t)
	h := application.Handler()

	rr := get(t, h, "/fields")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"handle":"office"`)

	rr = get(t, h, "/fields/telephone/countries?region=au")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":{"region":"AU","callingCode":61}}`, rr.Body.String())

	rr = get(t, h, "/fields/telephone/countries?region=zz")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = get(t, h, "/fields/office/input")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `<option value="GB" selected>`)
}

func TestApp_MetricsCountNormalizations(t *testing.T) {
	application, _ := newApp(t)
	h := application.Handler()

	req := httptest.NewRequest(http.MethodPost, "/fields/mobile/normalize", strings.NewReader(`{"value":"{corrupt"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	body := get(t, h, "/metrics").Body.String()
	assert.Contains(t, body, `telephone_field_decode_failures_total{field="mobile"} 1`)
	assert.Contains(t, body, `telephone_field_normalize_total{field="mobile",state="empty"} 1`)
}

func TestApp_TelephoneRule(t *testing.T) {
	application, _ := newApp(t)
	application.Boot()

	v := application.Validator().Make(
		map[string]string{"phone": "123", "other": "0412 345 678"},
		validation.Rules{"phone": "required|telephone", "other": "telephone"},
	)
	require.True(t, v.Fails())
	assert.Equal(t, []string{"phone"}, v.Errors().Fields())
	assert.Equal(t, telephone.InvalidMessage, v.Errors().First("phone"))
}
