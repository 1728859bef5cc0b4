package validation

// Schema is the ordered rule table for one resource kind. Rules run in
// order and the first failure stops validation.
type Schema[T any] struct {
	rules []FieldRule[T]
}

// NewSchema builds a schema from rules in the order they should be checked.
func NewSchema[T any](rules ...FieldRule[T]) *Schema[T] {
	return &Schema[T]{rules: rules}
}

// Build validates the creation fields and returns the value to store.
func (s *Schema[T]) Build(fields Fields) (T, error) {
	var value T
	for _, rule := range s.rules {
		raw, present := fields[rule.Field]
		if err := rule.onCreate(raw, present, &value); err != nil {
			var zero T
			return zero, err
		}
	}
	return value, nil
}

// Patch validates the fields present in an update and returns a function
// applying exactly those fields. A nil patch is never returned with a nil error.
func (s *Schema[T]) Patch(fields Fields) (func(*T), error) {
	type accepted struct {
		rule FieldRule[T]
		raw  []byte
	}
	var staged []accepted

	for _, rule := range s.rules {
		raw, present := fields[rule.Field]
		if !present {
			continue
		}

		// Rules are deterministic, so checking against a scratch value
		// is enough to know the replay below cannot fail.
		var scratch T
		if err := rule.onUpdate(raw, &scratch); err != nil {
			return nil, err
		}
		staged = append(staged, accepted{rule: rule, raw: raw})
	}

	return func(dst *T) {
		for _, a := range staged {
			_ = a.rule.onUpdate(a.raw, dst)
		}
	}, nil
}

// Fields lists the rule field names in check order.
func (s *Schema[T]) Fields() []string {
	names := make([]string, len(s.rules))
	for i, rule := range s.rules {
		names[i] = rule.Field
	}
	return names
}
