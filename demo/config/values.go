package config

import (
	"context"
	"errors"
	"strconv"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fctx"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
)

// The different validation error types.
var (
	errConfigDir  = errors.New("no configuration directory is usable")
	errEmptyInput = errors.New("the input string is empty")
	errBadRepeat  = errors.New("the repeat count must be at least 1")
)

// Values describes the possible configuration values that a user can
// modify and supply to the application.
type Values struct {
	Input     string `koanf:"input"`
	Repeat    int    `koanf:"repeat"`
	TitleCase bool   `koanf:"title-case"`
	NoWarning bool   `koanf:"no-warning"`
}

// validateValues validates all configuration values.
func (v *Values) validateValues() error {
	for _, validate := range []func() error{
		v.validateInput,
		v.validateRepeat,
	} {
		if err := validate(); err != nil {
			return err
		}
	}

	return nil
}

// validateInput validates the input string.
func (v *Values) validateInput() error {
	if v.Input == "" {
		return fault.Wrap(errEmptyInput,
			fctx.With(context.Background(),
				"error_at", "config-validate-input",
			),
			ftag.With(ftag.InvalidArgument),
			fmsg.With("An input string must be provided"),
		)
	}

	return nil
}

// validateRepeat validates the repeat count.
func (v *Values) validateRepeat() error {
	if v.Repeat < 1 {
		return fault.Wrap(errBadRepeat,
			fctx.With(context.Background(),
				"error_at", "config-validate-repeat",
				"repeat", strconv.Itoa(v.Repeat),
			),
			ftag.With(ftag.InvalidArgument),
			fmsg.With("The repeat count must be at least 1"),
		)
	}

	return nil
}
