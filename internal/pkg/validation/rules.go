package validation

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// MaxCardIDLength matches the cards.card_id column.
const MaxCardIDLength = 255

// Tags registered by Register.
const (
	TagCardID   = "cardid"
	TagNotBlank = "notblank"
)

var registerOnce sync.Once

// Register adds the custom rules to v.
func Register(v *validator.Validate) error {
	rules := map[string]validator.Func{
		TagCardID:   cardID,
		TagNotBlank: notBlank,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %q rule: %w", tag, err)
		}
	}
	return nil
}

// RegisterWithGin adds the custom rules to gin's binding validator. Safe to call more than once.
func RegisterWithGin() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
			return
		}
		err = Register(v)
	})
	return err
}

// cardID accepts whatever the reader reports, up to the column size, as long as it
// has no surrounding whitespace or control characters.
func cardID(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	if v == "" || v != strings.TrimSpace(v) || utf8.RuneCountInString(v) > MaxCardIDLength {
		return false
	}
	for _, r := range v {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
