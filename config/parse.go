package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"

	"gopkg.in/yaml.v1"
)

func parseValue(v reflect.Value, raw string) error {
	switch v.Type().Kind() {
	case reflect.Bool:
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		v.SetBool(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		v.SetInt(value)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		value, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return err
		}
		v.SetUint(value)
	case reflect.Float32, reflect.Float64:
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		v.SetFloat(value)
	case reflect.String:
		v.SetString(raw)
	default:
		return fmt.Errorf("can't parse values of type %s", v.Type())
	}
	return nil
}

// SetDefaults sets the fields in the struct pointed by config to the
// values in their "default" tags. Nested structs are also handled.
func SetDefaults(config interface{}) error {
	value := reflect.ValueOf(config)
	if value.Kind() != reflect.Ptr || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config must be a pointer to struct, not %T", config)
	}
	return setDefaults(value.Elem())
}

func setDefaults(value reflect.Value) error {
	valueType := value.Type()
	for ii := 0; ii < value.NumField(); ii++ {
		field := value.Field(ii)
		sfield := valueType.Field(ii)
		if sfield.PkgPath != "" {
			continue
		}
		if field.Kind() == reflect.Struct {
			if err := setDefaults(field); err != nil {
				return err
			}
			continue
		}
		if def := sfield.Tag.Get("default"); def != "" {
			if err := parseValue(field, def); err != nil {
				return fmt.Errorf("error parsing default value for field %s: %s", sfield.Name, err)
			}
		}
	}
	return nil
}

// Default returns a Config with its default values.
func Default() *Config {
	c := new(Config)
	if err := SetDefaults(c); err != nil {
		panic(err)
	}
	return c
}

// Parse decodes the YAML in data over the default configuration.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("error parsing configuration: %s", err)
	}
	return c, nil
}

// Load reads the configuration from the given YAML file. Fields not
// present in the file keep their default values.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %s", filename, err)
	}
	return c, nil
}
