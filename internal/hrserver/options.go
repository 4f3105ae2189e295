package hrserver

import (
	"github.com/kart-io/hr-center/pkg/app"
	"github.com/kart-io/hr-center/pkg/component/mongodb"
	httpopts "github.com/kart-io/hr-center/pkg/options/http"
	logopts "github.com/kart-io/hr-center/pkg/options/logger"
	weatheropts "github.com/kart-io/hr-center/pkg/options/weather"
	"github.com/kart-io/hr-center/pkg/security/auth/oidc"
)

// Options holds all configurable options for the HR server.
type Options struct {
	Log     *logopts.Options     `json:"log" mapstructure:"log"`
	HTTP    *httpopts.Options    `json:"http" mapstructure:"http"`
	MongoDB *mongodb.Options     `json:"mongodb" mapstructure:"mongodb"`
	OIDC    *oidc.Options        `json:"oidc" mapstructure:"oidc"`
	Weather *weatheropts.Options `json:"weather" mapstructure:"weather"`
}

// NewOptions creates Options with defaults.
func NewOptions() *Options {
	return &Options{
		Log:     logopts.NewOptions(),
		HTTP:    httpopts.NewOptions(),
		MongoDB: mongodb.NewOptions(),
		OIDC:    oidc.NewOptions(),
		Weather: weatheropts.NewOptions(),
	}
}

// Flags returns the named flag sets for the server.
func (o *Options) Flags() app.NamedFlagSets {
	fss := app.NamedFlagSets{}
	o.Log.AddFlags(fss.FlagSet("log"))
	o.HTTP.AddFlags(fss.FlagSet("http"))
	o.MongoDB.AddFlags(fss.FlagSet("mongodb"), "mongodb")
	o.OIDC.AddFlags(fss.FlagSet("oidc"))
	o.Weather.AddFlags(fss.FlagSet("weather"))
	return fss
}

// Complete fills in defaults that depend on the environment.
func (o *Options) Complete() error {
	if err := o.MongoDB.Complete(); err != nil {
		return err
	}
	if err := o.Weather.Complete(); err != nil {
		return err
	}
	return o.Log.Complete()
}

// Validate checks all option sections.
func (o *Options) Validate() error {
	if err := o.Log.Validate(); err != nil {
		return err
	}
	if err := o.HTTP.Validate(); err != nil {
		return err
	}
	if err := o.MongoDB.Validate(); err != nil {
		return err
	}
	if err := o.OIDC.Validate(); err != nil {
		return err
	}
	return o.Weather.Validate()
}
