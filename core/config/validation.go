// File: validation.go
// Title: Configuration Validation Implementation
// Description: Implements validation for configuration values including
//              type checking, range validation, required fields, and
//              defaults for absent keys.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-16
// Modified: 2026-08-16
//
// Change History:
// - 2026-08-16 v0.1.0: Initial implementation of validation

package config

import (
	"fmt"
	"reflect"
	"time"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool        // Whether the field is required
	Type     string      // Expected type: "string", "int", "bool", "float", "duration", "[]string"
	Min      interface{} // Minimum value (for numbers) or length (for strings/slices)
	Max      interface{} // Maximum value (for numbers) or length (for strings/slices)
	Default  interface{} // Default value applied when the key is absent
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validate validates the configuration against the provided rules.
// Defaults and numeric coercions are applied in place, so the write lock
// is held for the whole pass.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := &ValidationResult{
		Valid:  true,
		Errors: make([]string, 0),
	}

	for key, rule := range rules {
		if err := c.validateField(key, rule); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

// validateField validates a single configuration field
func (c *Config) validateField(key string, rule ValidationRule) error {
	value := c.getValue(key)

	if rule.Required && value == nil {
		return fmt.Errorf("required field '%s' is missing", key)
	}

	if value == nil {
		if rule.Default != nil {
			c.setValue(key, rule.Default)
		}
		return nil
	}

	if rule.Type != "" {
		if err := c.validateType(key, value, rule.Type); err != nil {
			return err
		}
	}

	return c.validateBounds(key, value, rule)
}

// validateType validates the type of a configuration value
func (c *Config) validateType(key string, value interface{}, expectedType string) error {
	actualType := reflect.TypeOf(value)

	switch expectedType {
	case "string":
		if actualType.Kind() != reflect.String {
			return fmt.Errorf("field '%s' must be a string, got %s", key, actualType.Kind())
		}

	case "int":
		switch actualType.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			// Valid integer types
		case reflect.Float64:
			// YAML numbers may arrive as float64; accept whole numbers
			if f, ok := value.(float64); ok && f == float64(int64(f)) {
				c.setValue(key, int64(f))
			} else {
				return fmt.Errorf("field '%s' must be an integer, got float with decimal places", key)
			}
		default:
			return fmt.Errorf("field '%s' must be an integer, got %s", key, actualType.Kind())
		}

	case "float":
		switch actualType.Kind() {
		case reflect.Float32, reflect.Float64:
			// Valid float types
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			// Integers convert to floats
		default:
			return fmt.Errorf("field '%s' must be a float, got %s", key, actualType.Kind())
		}

	case "bool":
		if actualType.Kind() != reflect.Bool {
			return fmt.Errorf("field '%s' must be a boolean, got %s", key, actualType.Kind())
		}

	case "duration":
		if actualType.Kind() == reflect.String {
			if _, err := time.ParseDuration(value.(string)); err != nil {
				return fmt.Errorf("field '%s' must be a valid duration string, got '%v'", key, value)
			}
		} else if actualType != reflect.TypeOf(time.Duration(0)) {
			return fmt.Errorf("field '%s' must be a duration, got %s", key, actualType.Kind())
		}

	case "[]string":
		if actualType.Kind() != reflect.Slice {
			return fmt.Errorf("field '%s' must be a slice of strings, got %s", key, actualType.Kind())
		}
		if slice, ok := value.([]interface{}); ok {
			stringSlice := make([]string, len(slice))
			for i, item := range slice {
				stringSlice[i] = fmt.Sprintf("%v", item)
			}
			c.setValue(key, stringSlice)
		} else if _, ok := value.([]string); !ok {
			return fmt.Errorf("field '%s' must be a slice of strings", key)
		}

	default:
		return fmt.Errorf("unknown validation type: %s", expectedType)
	}

	return nil
}

// validateBounds validates numeric bounds and string/slice lengths
func (c *Config) validateBounds(key string, value interface{}, rule ValidationRule) error {
	if rule.Min != nil {
		if err := validateMin(key, value, rule.Min); err != nil {
			return err
		}
	}

	if rule.Max != nil {
		if err := validateMax(key, value, rule.Max); err != nil {
			return err
		}
	}

	return nil
}

// validateMin validates minimum values or lengths
func validateMin(key string, value interface{}, min interface{}) error {
	switch v := value.(type) {
	case int, int8, int16, int32, int64:
		intVal := reflect.ValueOf(v).Int()
		minVal := reflect.ValueOf(min).Int()
		if intVal < minVal {
			return fmt.Errorf("field '%s' value %d is less than minimum %d", key, intVal, minVal)
		}

	case float32, float64:
		floatVal := reflect.ValueOf(v).Float()
		minVal := reflect.ValueOf(min).Float()
		if floatVal < minVal {
			return fmt.Errorf("field '%s' value %g is less than minimum %g", key, floatVal, minVal)
		}

	case string:
		if minLen, ok := min.(int); ok && len(v) < minLen {
			return fmt.Errorf("field '%s' length %d is less than minimum %d", key, len(v), minLen)
		}

	case []string:
		if minLen, ok := min.(int); ok && len(v) < minLen {
			return fmt.Errorf("field '%s' length %d is less than minimum %d", key, len(v), minLen)
		}

	case []interface{}:
		if minLen, ok := min.(int); ok && len(v) < minLen {
			return fmt.Errorf("field '%s' length %d is less than minimum %d", key, len(v), minLen)
		}
	}

	return nil
}

// validateMax validates maximum values or lengths
func validateMax(key string, value interface{}, max interface{}) error {
	switch v := value.(type) {
	case int, int8, int16, int32, int64:
		intVal := reflect.ValueOf(v).Int()
		maxVal := reflect.ValueOf(max).Int()
		if intVal > maxVal {
			return fmt.Errorf("field '%s' value %d is greater than maximum %d", key, intVal, maxVal)
		}

	case float32, float64:
		floatVal := reflect.ValueOf(v).Float()
		maxVal := reflect.ValueOf(max).Float()
		if floatVal > maxVal {
			return fmt.Errorf("field '%s' value %g is greater than maximum %g", key, floatVal, maxVal)
		}

	case string:
		if maxLen, ok := max.(int); ok && len(v) > maxLen {
			return fmt.Errorf("field '%s' length %d is greater than maximum %d", key, len(v), maxLen)
		}

	case []string:
		if maxLen, ok := max.(int); ok && len(v) > maxLen {
			return fmt.Errorf("field '%s' length %d is greater than maximum %d", key, len(v), maxLen)
		}

	case []interface{}:
		if maxLen, ok := max.(int); ok && len(v) > maxLen {
			return fmt.Errorf("field '%s' length %d is greater than maximum %d", key, len(v), maxLen)
		}
	}

	return nil
}
