package env

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// MarshalTemplate renders a .env template from a struct's `env` tags.
// Fields holding a value are written as KEY=value; empty fields become a
// commented line so the user can see what is configurable. envDefault tags
// are used as the placeholder for unset fields.
func MarshalTemplate(c any) (string, error) {
	v := reflect.ValueOf(c)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return "", fmt.Errorf("env: expected struct, got %s", v.Kind())
	}
	t := v.Type()

	var b strings.Builder
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("env")
		if tag == "" || !field.IsExported() {
			continue
		}

		key := strings.Split(tag, ",")[0]
		if key == "" {
			continue
		}

		val := formatValue(v.Field(i))
		if val == "" {
			val = field.Tag.Get("envDefault")
		}

		if val == "" {
			fmt.Fprintf(&b, "# %s=\n", key)
		} else if v.Field(i).IsZero() {
			fmt.Fprintf(&b, "# %s=%s\n", key, val)
		} else {
			fmt.Fprintf(&b, "%s=%s\n", key, val)
		}
	}

	return b.String(), nil
}

func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Int() == 0 {
			return ""
		}
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Float32, reflect.Float64:
		if v.Float() == 0 {
			return ""
		}
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		if !v.Bool() {
			return ""
		}
		return "true"
	default:
		return ""
	}
}
