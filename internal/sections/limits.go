package sections

// FeaturedLimits bounds how many featured items a caller may request.
// The zero value behaves like the catalog constants, so components that
// are not configured explicitly keep the built-in bounds.
type FeaturedLimits struct {
	Default int `json:"default"`
	Max     int `json:"max"`
}

// DefaultLimits returns the built-in featured limit bounds.
func DefaultLimits() FeaturedLimits {
	return FeaturedLimits{Default: DefaultFeaturedLimit, Max: MaxFeaturedLimit}
}

// Clamp normalizes a requested limit into the allowed range. Non-positive
// requests fall back to the default.
func (l FeaturedLimits) Clamp(limit int) int {
	def := l.Default
	if def < 1 {
		def = DefaultFeaturedLimit
	}
	max := l.Max
	if max < 1 {
		max = MaxFeaturedLimit
	}
	if max < def {
		max = def
	}
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
