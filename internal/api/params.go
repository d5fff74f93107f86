package api

import (
	"net/url"
	"strconv"
	"strings"
)

// Params assembles a query string from present values only. A value that
// was never set is simply absent; there is no null sentinel to filter out
// at serialization time.
type Params struct {
	values url.Values
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{values: url.Values{}}
}

// Set adds a parameter unless the value is blank.
func (p *Params) Set(key, value string) *Params {
	if strings.TrimSpace(value) != "" {
		p.values.Set(key, value)
	}
	return p
}

// SetInt adds an integer parameter.
func (p *Params) SetInt(key string, value int) *Params {
	p.values.Set(key, strconv.Itoa(value))
	return p
}

// SetList adds a vector-valued parameter as a comma-joined string. Blank
// elements are dropped; an empty vector leaves the parameter absent.
func (p *Params) SetList(key string, values []string) *Params {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) > 0 {
		p.values.Set(key, strings.Join(cleaned, ","))
	}
	return p
}

// SetGeo adds a country/region parameter, omitting the worldwide sentinel:
// sending "WW" explicitly and omitting the filter mean the same thing to
// the API, and the contract prefers omission.
func (p *Params) SetGeo(key string, values []string) *Params {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" || strings.EqualFold(trimmed, WorldwideCode) {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}
	if len(cleaned) > 0 {
		p.values.Set(key, strings.Join(cleaned, ","))
	}
	return p
}

// Has reports whether the key has been set.
func (p *Params) Has(key string) bool {
	return p.values.Has(key)
}

// Encode returns the URL-encoded query string.
func (p *Params) Encode() string {
	return p.values.Encode()
}
