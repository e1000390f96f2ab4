package telephone_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/km-arc/go-laravel-telephone/framework/config"
	"github.com/km-arc/go-laravel-telephone/framework/container"
	"github.com/km-arc/go-laravel-telephone/framework/fields"
	"github.com/km-arc/go-laravel-telephone/framework/http/validation"
	"github.com/km-arc/go-laravel-telephone/framework/routing"
	"github.com/km-arc/go-laravel-telephone/phone"
	"github.com/km-arc/go-laravel-telephone/telephone"
)

func TestServiceProvider_BindsLibraryByDefault(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)
	reg.Register(&telephone.ServiceProvider{})
	reg.Boot()

	_, ok := container.Resolve[phone.Capability](c, "phone").(*phone.Library)
	assert.True(t, ok)
}

func TestServiceProvider_WiresHost(t *testing.T) {
	c := container.New()
	c.Instance("config", &config.Config{Telephone: config.TelephoneConfig{DefaultCountryCode: "GB"}})
	c.Instance("fields.kinds", fields.NewKinds())
	c.Instance("validator", validation.NewFactory())
	c.Instance("router", routing.New(nil))

	reg := container.NewProviderRegistry(c)
	reg.Register(&telephone.ServiceProvider{Capability: &fakeCapability{}})
	reg.Boot()

	var def fields.Definition
	require.NoError(t, yaml.Unmarshal([]byte("handle: home\ntype: telephone\n"), &def))
	f, err := container.Resolve[*fields.Kinds](c, "fields.kinds").Build(def)
	require.NoError(t, err)
	assert.Equal(t, "GB", f.(*telephone.Field).Settings().DefaultCountryCode)

	v := container.Resolve[*validation.Factory](c, "validator").Make(
		map[string]string{"home": "020 7946 0000"},
		validation.Rules{"home": "telephone"},
	)
	assert.True(t, v.Passes())

	rr := httptest.NewRecorder()
	container.Resolve[*routing.Router](c, "router").ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/fields/telephone/countries", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[{"region":"AU","callingCode":61},{"region":"GB","callingCode":44},{"region":"US","callingCode":1}]}`, rr.Body.String())
}

func TestServiceProvider_BadDefinitionSettings(t *testing.T) {
	c := container.New()
	c.Instance("fields.kinds", fields.NewKinds())
	reg := container.NewProviderRegistry(c)
	reg.Register(&telephone.ServiceProvider{Capability: &fakeCapability{}})
	reg.Boot()

	var def fields.Definition
	require.NoError(t, yaml.Unmarshal([]byte("handle: home\ntype: telephone\nsettings:\n  defaultCountryCode: nowhere\n"), &def))
	f, err := container.Resolve[*fields.Kinds](c, "fields.kinds").Build(def)
	assert.Error(t, err)
	assert.Nil(t, f)
}
