package i18n

import (
	"fmt"
	"regexp"
	"strings"
)

type Params map[string]interface{}

type ICatalog interface {
	Render(key, code string, params Params) string
	Has(key, code string) bool
}

type Catalog struct {
	registry  IRegistry
	templates map[string]map[string]string
}

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

func NewCatalog(registry IRegistry) *Catalog {
	return &Catalog{
		registry:  registry,
		templates: messageTemplates(),
	}
}

// Render never fails: the requested locale is tried first, then the default
// locale, and when no locale carries the key the key itself is returned.
func (c *Catalog) Render(key, code string, params Params) string {
	template, ok := c.lookup(key, c.registry.Resolve(code).Code)
	if !ok {
		template, ok = c.lookup(key, c.registry.Default().Code)
	}
	if !ok {
		template, ok = c.lookupAny(key)
	}
	if !ok {
		return key
	}

	return substitute(template, params)
}

func (c *Catalog) Has(key, code string) bool {
	_, ok := c.lookup(key, code)
	return ok
}

func (c *Catalog) lookup(key, code string) (string, bool) {
	locale, ok := c.templates[code]
	if !ok {
		return "", false
	}
	template, ok := locale[key]
	return template, ok
}

func (c *Catalog) lookupAny(key string) (string, bool) {
	for _, lang := range c.registry.List() {
		if template, ok := c.lookup(key, lang.Code); ok {
			return template, true
		}
	}
	return "", false
}

func substitute(template string, params Params) string {
	if len(params) == 0 || !strings.Contains(template, "{") {
		return template
	}

	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		value, ok := params[name]
		if !ok {
			return match
		}
		return formatParam(value)
	})
}

func formatParam(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%.2f", v)
	case []string:
		return strings.Join(v, ", ")
	default:
		return fmt.Sprint(v)
	}
}
