package utils

import (
	"moodjournal-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	emailRegex            = regexp.MustCompile(constvars.RegexEmail)
	usernameRegex         = regexp.MustCompile(constvars.RegexUsername)
	atLeastOneDigit       = regexp.MustCompile(constvars.RegexContainAtLeastOneDigit)
	atLeastOneSpecialChar = regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar)
	hexColorRegex         = regexp.MustCompile(constvars.RegexHexColorCode)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("username", validateUsername)
	validate.RegisterValidation("clean_name", validateCleanName)
	validate.RegisterValidation("email_format", validateEmail)
	validate.RegisterValidation("hexcolor_six", validateHexColor)
	validate.RegisterValidation("not_future", validateNotFutureYear)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	return IsValidPassword(fl.Field().String())
}

func validateUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}

func validateCleanName(fl validator.FieldLevel) bool {
	return !ContainsBlockedWord(fl.Field().String())
}

func validateEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateNotFutureYear(fl validator.FieldLevel) bool {
	return fl.Field().Int() <= int64(time.Now().Year())
}

func IsValidPassword(password string) bool {
	return len(password) >= 8 &&
		atLeastOneDigit.MatchString(password) &&
		atLeastOneSpecialChar.MatchString(password)
}

func ContainsBlockedWord(name string) bool {
	normalized := strings.ToLower(name)
	normalized = strings.NewReplacer("_", "", ".", "").Replace(normalized)
	for _, word := range constvars.BlockedUsernameWords {
		if strings.Contains(normalized, word) {
			return true
		}
	}
	return false
}
