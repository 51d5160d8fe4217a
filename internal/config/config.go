package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/alvinbaena/pwd-toolkit/internal/util"
	"github.com/alvinbaena/pwd-toolkit/pkg/hibp"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config drives the breach checker and the generators, shared by every command.
type Config struct {
	Debug          bool          `mapstructure:"DEBUG"`
	HibpURL        string        `mapstructure:"HIBP_URL" validate:"required,url"`
	HibpRetries    int           `mapstructure:"HIBP_RETRIES" validate:"min=0,max=10"`
	BreachDebounce time.Duration `mapstructure:"BREACH_DEBOUNCE" validate:"min=0"`
	BreachCacheTTL time.Duration `mapstructure:"BREACH_CACHE_TTL" validate:"min=0"`
	RandomSource   string        `mapstructure:"RANDOM_SOURCE" validate:"omitempty,oneof=crypto web-crypto system system-random mixed browser-random pseudo math"`
}

// ServerConfig is only required by the API server.
type ServerConfig struct {
	Port    string `mapstructure:"PORT" validate:"required,numeric"`
	SelfTLS bool   `mapstructure:"SELF_TLS" validate:"required_without_all=TLSCert TLSKey"`
	TLSCert string `mapstructure:"TLS_CERT" validate:"required_if=SelfTLS false,required_with=TLSKey"`
	TLSKey  string `mapstructure:"TLS_KEY" validate:"required_if=SelfTLS false,required_with=TLSCert"`
}

func setDefaults() {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("HIBP_URL", hibp.DefaultURL)
	viper.SetDefault("HIBP_RETRIES", hibp.DefaultRetries)
	viper.SetDefault("BREACH_DEBOUNCE", hibp.DefaultDebounce)
	viper.SetDefault("BREACH_CACHE_TTL", hibp.DefaultCacheTTL)
	viper.SetDefault("RANDOM_SOURCE", "crypto")
}

func bindEnvs(iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)
	for i := 0; i < ift.NumField(); i++ {
		v := ifv.Field(i)
		t := ift.Field(i)
		tv, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			continue
		}
		switch v.Kind() {
		case reflect.Struct:
			bindEnvs(v.Interface(), append(parts, tv)...)
		default:
			_ = viper.BindEnv(strings.Join(append(parts, tv), "."))
		}
	}
}

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "required_without_all":
		return fmt.Sprintf("This field is required if fields [%s] are missing", util.ToScreamingSnakeCase(fe.Param()))
	case "required_if":
		return fmt.Sprintf("This field is required if %s", util.ToScreamingSnakeCase(fe.Param()))
	case "required_with":
		return fmt.Sprintf("This is field requires the presence of %s", util.ToScreamingSnakeCase(fe.Param()))
	case "url":
		return "This field must be a valid URL"
	case "numeric":
		return "This field must be a number"
	case "oneof":
		return fmt.Sprintf("This field must be one of [%s]", fe.Param())
	case "min":
		return fmt.Sprintf("This field must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("This field must be at most %s", fe.Param())
	}
	return fe.Error() // default error
}

// Load reads the configuration from the environment. A .env file in the working
// directory, if present, fills the variables that are not already set.
func Load() (Config, error) {
	config := Config{}
	err := load(&config)
	return config, err
}

func LoadServer() (ServerConfig, error) {
	config := ServerConfig{}
	err := load(&config)
	return config, err
}

func load(config interface{}) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("could not read .env file")
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults()

	// I hate this, but it works.
	// This is to not require a config file to unmarshal Envs in a struct
	// https://github.com/spf13/viper/issues/188#issuecomment-399884438
	bindEnvs(reflect.ValueOf(config).Elem().Interface())

	if err := viper.Unmarshal(config); err != nil {
		return err
	}

	return Validate(config)
}

// Validate returns a single error listing every invalid variable. config must be
// a pointer to one of the configuration structs.
func Validate(config interface{}) error {
	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			var msgs []string
			for _, fe := range ve {
				msgs = append(msgs, fmt.Sprintf("%s: %s", util.ToScreamingSnakeCase(fe.Field()), msgForTag(fe)))
			}
			return errors.New(strings.Join(msgs, ". "))
		}
		return fmt.Errorf("validating configuration from environment: %w", err)
	}
	return nil
}
