package google

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"nineblocker/config"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() == reflect.String {
			return strings.TrimSpace(field.String()) != ""
		}
		return true
	})
	if err != nil {
		panic(err)
	}
	return v
}

// CheckConfigured rejects a credentials record whose fields are blank or
// equal to the template placeholders. The API key is not required when a
// service account file is set.
func CheckConfigured(gs config.GoogleSheets) error {
	if err := checkField(config.PathSpreadsheetId, gs.SpreadsheetId, config.PlaceholderSpreadsheetId); err != nil {
		return err
	}
	if gs.ServiceAccountFile != "" {
		return nil
	}
	return checkField(config.PathApiKey, gs.ApiKey, config.PlaceholderApiKey)
}

func checkField(path, value, placeholder string) error {
	if err := validate.Var(value, "notblank"); err != nil {
		return fmt.Errorf("%w: %s is blank", ErrNotConfigured, path)
	}
	if value == placeholder {
		return fmt.Errorf("%w: %s still holds the template placeholder", ErrNotConfigured, path)
	}
	return nil
}
