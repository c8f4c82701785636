package keymap

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/widgets/config"
)

var bindingType = reflect.TypeOf(key.Binding{})

// ApplyOverrides replaces key.Binding fields of km with the keys configured
// under their snake_case names, keeping each binding's help text. Embedded
// structs such as Base are walked too. km must be a pointer to a struct.
//
//	km := NewFormKeyMap()
//	ApplyOverrides(&km, overrides) // overrides["next_field"] -> km.NextField
func ApplyOverrides(km interface{}, overrides config.KeybindingSectionConfig) {
	if len(overrides) == 0 {
		return
	}
	v := reflect.ValueOf(km)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return
	}
	applyOverrides(v.Elem(), overrides)
}

func applyOverrides(v reflect.Value, overrides config.KeybindingSectionConfig) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field, sf := v.Field(i), t.Field(i)
		if !field.CanSet() {
			continue
		}
		if sf.Anonymous && field.Kind() == reflect.Struct {
			applyOverrides(field, overrides)
			continue
		}
		if sf.Type != bindingType {
			continue
		}

		keys := overrides[camelToSnake(sf.Name)]
		if len(keys) == 0 {
			continue
		}
		desc := field.Interface().(key.Binding).Help().Desc
		field.Set(reflect.ValueOf(key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], desc),
		)))
	}
}

// camelToSnake converts a field name such as NextField to next_field.
func camelToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteRune('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
