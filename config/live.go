package config

import "github.com/spf13/viper"

// LiveEndpoint resolves the backend URL through viper on each call, so
// environment changes are picked up without reloading.
type LiveEndpoint struct {
	v *viper.Viper
}

// NewLiveEndpoint reads from v, or from the global viper instance when v is
// nil.
func NewLiveEndpoint(v *viper.Viper) *LiveEndpoint {
	if v == nil {
		v = viper.GetViper()
	}
	_ = v.BindEnv(KeyBackendURL, EnvBackendURL)

	return &LiveEndpoint{v: v}
}

func (e *LiveEndpoint) BackendURL() string {
	return e.v.GetString(KeyBackendURL)
}
