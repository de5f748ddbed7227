// Package i18n provides the message catalog used to localize notices.
//
// Bundles are YAML files named after a BCP 47 tag (en.yaml, pt-BR.yaml)
// mapping message keys to text. Nested maps are flattened with dots:
//
//	errorFetchingRecord: There was an error fetching the record
//	actions:
//	  new: Create new   # key "actions.new"
//
// The embedded bundles under locales/ are always loaded; an optional
// directory can add locales or override individual keys.
//
// Lookup order is: configured locale, default locale, the key itself.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/draftdesk/internal/platform/config"
	"github.com/jsamuelsen11/draftdesk/internal/ports"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// Compile-time interface check.
var _ ports.Translator = (*Catalog)(nil)

// Catalog resolves message keys for one negotiated locale. It is immutable
// after construction and safe for concurrent use.
type Catalog struct {
	locale   language.Tag
	fallback language.Tag
	bundles  map[language.Tag]map[string]string
	matcher  language.Matcher
	tags     []language.Tag
}

// New loads the embedded bundles plus cfg.Dir (when set) and negotiates
// cfg.Locale against the available locales. The default locale must have
// a bundle.
func New(cfg *config.I18nConfig) (*Catalog, error) {
	fallback, err := language.Parse(cfg.DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parsing default locale %q: %w", cfg.DefaultLocale, err)
	}

	bundles := make(map[language.Tag]map[string]string)

	embedded, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, fmt.Errorf("opening embedded locales: %w", err)
	}
	if err := loadBundles(bundles, embedded); err != nil {
		return nil, err
	}
	if cfg.Dir != "" {
		if err := loadBundles(bundles, os.DirFS(cfg.Dir)); err != nil {
			return nil, fmt.Errorf("loading locale dir %s: %w", cfg.Dir, err)
		}
	}

	if _, ok := bundles[fallback]; !ok {
		return nil, fmt.Errorf("no bundle for default locale %q", fallback)
	}

	c := &Catalog{
		fallback: fallback,
		bundles:  bundles,
		tags:     supportedTags(bundles, fallback),
	}
	c.matcher = language.NewMatcher(c.tags)

	requested := cfg.Locale
	if requested == "" {
		requested = cfg.DefaultLocale
	}
	c.locale = c.match(requested)

	return c, nil
}

// TranslateMessage returns the text for key in the catalog's locale, then
// in the default locale, and finally the key itself.
func (c *Catalog) TranslateMessage(key string) string {
	if msg, ok := c.bundles[c.locale][key]; ok {
		return msg
	}
	if msg, ok := c.bundles[c.fallback][key]; ok {
		return msg
	}
	return key
}

// Locale returns the negotiated locale.
func (c *Catalog) Locale() language.Tag {
	return c.locale
}

// Locales returns the available locales, default first.
func (c *Catalog) Locales() []language.Tag {
	out := make([]language.Tag, len(c.tags))
	copy(out, c.tags)
	return out
}

// ForAcceptLanguage returns a catalog sharing the same bundles whose locale
// is negotiated from an Accept-Language header value. An empty or
// unparseable header keeps the current locale.
func (c *Catalog) ForAcceptLanguage(header string) *Catalog {
	if strings.TrimSpace(header) == "" {
		return c
	}
	prefs, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(prefs) == 0 {
		return c
	}

	_, idx, conf := c.matcher.Match(prefs...)
	if conf == language.No {
		return c
	}

	clone := *c
	clone.locale = c.tags[idx]
	return &clone
}

// match picks the closest available tag for a requested locale, falling
// back to the default locale.
func (c *Catalog) match(requested string) language.Tag {
	tag, err := language.Parse(requested)
	if err != nil {
		return c.fallback
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return c.fallback
	}
	return c.tags[idx]
}

// supportedTags lists bundle locales with the fallback first, which makes
// it the matcher's default.
func supportedTags(bundles map[language.Tag]map[string]string, fallback language.Tag) []language.Tag {
	rest := make([]language.Tag, 0, len(bundles))
	for tag := range bundles {
		if tag != fallback {
			rest = append(rest, tag)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].String() < rest[j].String() })

	return append([]language.Tag{fallback}, rest...)
}

// loadBundles reads every *.yaml / *.yml file at the root of fsys into
// bundles, merging keys into bundles already present.
func loadBundles(bundles map[language.Tag]map[string]string, fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading locales: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		ext := path.Ext(name)
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		tag, err := language.Parse(strings.TrimSuffix(name, ext))
		if err != nil {
			return fmt.Errorf("locale file %s: %w", name, err)
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}

		messages, err := parseBundle(data)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}

		if bundles[tag] == nil {
			bundles[tag] = make(map[string]string, len(messages))
		}
		for k, v := range messages {
			bundles[tag][k] = v
		}
	}

	return nil
}

var errNonScalar = errors.New("message values must be strings or nested maps")

func parseBundle(data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(raw))
	if err := flatten(out, "", raw); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(out map[string]string, prefix string, in map[string]any) error {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch v := v.(type) {
		case map[string]any:
			if err := flatten(out, key, v); err != nil {
				return err
			}
		case string:
			out[key] = v
		case nil, []any:
			return fmt.Errorf("key %q: %w", key, errNonScalar)
		default:
			out[key] = fmt.Sprint(v)
		}
	}
	return nil
}
