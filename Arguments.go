package dispatch

// Arguments holds the resolved, typed arguments for a single controller
// invocation, keyed by parameter name.  Arguments never outlive the
// invocation they were resolved for.
type Arguments map[string]interface{}

// Get returns the raw resolved value of the named parameter.
func (a Arguments) Get(name string) interface{} {
	return a[name]
}

// Has returns true if the named parameter was resolved, even to absence of
// value.
func (a Arguments) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// IsNull returns true if the named parameter resolved to absence of value.
func (a Arguments) IsNull(name string) bool {
	value, ok := a[name]
	return ok && value == nil
}

// String returns the named parameter as a string, or the zero value if it is
// absent or not a string.
func (a Arguments) String(name string) string {
	value, _ := a[name].(string)
	return value
}

// Int returns the named parameter as an int, or the zero value if it is
// absent or not an int.
func (a Arguments) Int(name string) int {
	value, _ := a[name].(int)
	return value
}

// Float returns the named parameter as a float64, or the zero value if it is
// absent or not a float64.
func (a Arguments) Float(name string) float64 {
	value, _ := a[name].(float64)
	return value
}

// Bool returns the named parameter as a bool, or the zero value if it is
// absent or not a bool.
func (a Arguments) Bool(name string) bool {
	value, _ := a[name].(bool)
	return value
}
