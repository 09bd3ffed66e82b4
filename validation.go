package threadlog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New(errMsgNilConfig)
	}

	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%s: %w", errMsgConfigInvalid, err)
	}

	if _, err := parseLevel(cfg.Level); err != nil {
		return fmt.Errorf("%s: %w", errMsgConfigInvalid, err)
	}

	return nil
}
