package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// SeedProfile controls fixture generation and the simulated API latency.
type SeedProfile struct {
	// Seed feeds the fixture RNG; the same seed reproduces the same data.
	Seed int64 `mapstructure:"seed"`

	Tenants             int `mapstructure:"tenants"`
	DevicesPerTenant    int `mapstructure:"devicesPerTenant"`
	UsersPerTenant      int `mapstructure:"usersPerTenant"`
	BillingPerTenant    int `mapstructure:"billingPerTenant"`
	UnregisteredDevices int `mapstructure:"unregisteredDevices"`

	LatencyMinMs int `mapstructure:"latencyMinMs"`
	LatencyMaxMs int `mapstructure:"latencyMaxMs"`
}

// DefaultSeedProfile returns the profile used when no file is present.
func DefaultSeedProfile() SeedProfile {
	return SeedProfile{
		Seed:                1,
		Tenants:             25,
		DevicesPerTenant:    4,
		UsersPerTenant:      3,
		BillingPerTenant:    2,
		UnregisteredDevices: 8,
		LatencyMinMs:        100,
		LatencyMaxMs:        200,
	}
}

// NewSeedProfile reads tenantdesk.yml when one exists, falling back to
// defaults. SEED overrides the file's seed for reproducible CLI runs.
func NewSeedProfile(cfg Config) (SeedProfile, error) {
	v := viper.New()
	v.SetConfigName("tenantdesk")
	v.SetConfigType("yml")
	if cfg.ProfilePath != "" {
		v.SetConfigFile(cfg.ProfilePath)
	} else {
		v.AddConfigPath("/etc/tenantdesk")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("TENANTDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	profile := DefaultSeedProfile()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return SeedProfile{}, err
		}
	} else if err := v.UnmarshalKey("profile", &profile); err != nil {
		return SeedProfile{}, err
	}

	profile.Seed = int64(getenvInt("SEED", int(profile.Seed)))
	if profile.Tenants < 0 {
		profile.Tenants = 0
	}
	if profile.LatencyMaxMs < profile.LatencyMinMs {
		profile.LatencyMaxMs = profile.LatencyMinMs
	}
	return profile, nil
}

// LatencyWindow converts the profile's latency bounds to durations.
func (p SeedProfile) LatencyWindow() (time.Duration, time.Duration) {
	return time.Duration(p.LatencyMinMs) * time.Millisecond,
		time.Duration(p.LatencyMaxMs) * time.Millisecond
}
