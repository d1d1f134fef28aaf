package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// configRule is a custom validation tag with its English message.
// {0} in message is replaced by the field's mapstructure path.
type configRule struct {
	tag     string
	fn      validator.Func
	message string
}

var configRules = []configRule{
	{
		tag:     "parentdir",
		fn:      isInExistingDirectory,
		message: "{0} must be a file path inside an existing directory",
	},
	{
		tag:     "executable",
		fn:      isExecutableName,
		message: "{0} must be a single command name or path without arguments",
	},
}

// configValidator checks a Config and reports every failed field in one
// error, worded by the English translator.
type configValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func newConfigValidator() (*configValidator, error) {
	validate := validator.New()

	enLocale := en.New()
	translator, _ := ut.New(enLocale, enLocale).GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, fmt.Errorf("enTranslations.RegisterDefaultTranslations() > %w", err)
	}

	// Errors name fields the way they are written in config.yml.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	for _, rule := range configRules {
		if err := validate.RegisterValidation(rule.tag, rule.fn); err != nil {
			return nil, fmt.Errorf("validate.RegisterValidation(%s) > %w", rule.tag, err)
		}
		if err := validate.RegisterTranslation(rule.tag, translator, addMessage(rule), translateField(rule.tag)); err != nil {
			return nil, fmt.Errorf("validate.RegisterTranslation(%s) > %w", rule.tag, err)
		}
	}

	return &configValidator{
		validate:   validate,
		translator: translator,
	}, nil
}

func addMessage(rule configRule) validator.RegisterTranslationsFunc {
	return func(translator ut.Translator) error {
		return translator.Add(rule.tag, rule.message, true)
	}
}

func translateField(tag string) validator.TranslationFunc {
	return func(translator ut.Translator, fe validator.FieldError) string {
		message, err := translator.T(tag, fieldPath(fe))
		if err != nil {
			return fe.Error()
		}
		return message
	}
}

// fieldPath drops the root struct name, e.g. "Config.sync.method" becomes
// "sync.method".
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Namespace()
	}
	return path
}

// Validate returns nil when cfg is valid. Field failures are joined into one
// message. Any other validator error is wrapped as is.
func (v *configValidator) Validate(cfg *Config) error {
	err := v.validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("validate.Struct() > %w", err)
	}
	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fe.Translate(v.translator))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, ", "))
}

// isInExistingDirectory accepts a path whose parent directory exists and
// which is not itself a directory. The file itself may be missing.
func isInExistingDirectory(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return false
	}

	info, err := os.Stat(filepath.Dir(path))
	if err != nil {
		return false
	}
	return info.IsDir()
}

// isExecutableName rejects commands carrying arguments such as "rclone -v",
// since commands are run without a shell.
func isExecutableName(fl validator.FieldLevel) bool {
	command := fl.Field().String()
	return command != "" && !strings.ContainsAny(command, " \t\n")
}
