package ringlist

type Configuration struct {
	capacity int
	trim     int
}

// Creates a configuration object with sensible defaults
// Use this as the start of the fluent configuration:
// e.g.: ringlist.New[string](ringlist.Configure().Capacity(128))
func Configure() *Configuration {
	return &Configuration{
		capacity: 16,
		trim:     1024,
	}
}

// The number of node slots to allocate up front [16]
func (c *Configuration) Capacity(count int) *Configuration {
	if count < 0 {
		count = 0
	}
	c.capacity = count
	return c
}

// Clear keeps the node slots around for reuse unless more than this many
// have been allocated, in which case they're handed back to the GC [1024]
func (c *Configuration) Trim(count int) *Configuration {
	if count < 0 {
		count = 0
	}
	c.trim = count
	return c
}
