// Package catalog holds the packaged trips, guides and quiz content the
// service is configured with. A Catalog is loaded once at start-up, is never
// mutated afterwards and is handed to services explicitly.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"tripnation/pkg/pricing"
	"tripnation/pkg/quiz"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// defaultDurationDays is used when a package duration has no number in it.
const defaultDurationDays = 3

type Restaurant struct {
	Name     string `yaml:"name" json:"name" validate:"required"`
	Discount string `yaml:"discount" json:"discount"`
}

type Partnerships struct {
	Transport     string     `yaml:"transport" json:"transport" validate:"required"`
	Accommodation string     `yaml:"accommodation" json:"accommodation" validate:"required"`
	Restaurant    Restaurant `yaml:"restaurant" json:"restaurant"`
}

type Package struct {
	ID                int          `yaml:"id" json:"id" validate:"required,gt=0"`
	Slug              string       `yaml:"slug" json:"slug" validate:"required"`
	Title             string       `yaml:"title" json:"title" validate:"required"`
	Duration          string       `yaml:"duration" json:"duration" validate:"required"`
	Price             string       `yaml:"price" json:"price" validate:"required"`
	Description       string       `yaml:"description" json:"description"`
	Image             string       `yaml:"image" json:"image"`
	Rating            float64      `yaml:"rating" json:"rating" validate:"gte=0,lte=5"`
	Difficulty        string       `yaml:"difficulty" json:"difficulty"`
	Sport             string       `yaml:"sport" json:"sport" validate:"required"`
	GuideID           string       `yaml:"guide_id" json:"guide_id,omitempty"`
	ServiceFeePercent *float64     `yaml:"service_fee_percent" json:"service_fee_percent,omitempty" validate:"omitempty,gte=0,lt=100"`
	Partnerships      Partnerships `yaml:"partnerships" json:"partnerships"`
}

var leadingNumber = regexp.MustCompile(`\d+`)

// DurationDays reads the first number of Duration ("5 dias" is 5).
func (p Package) DurationDays() int {
	if m := leadingNumber.FindString(p.Duration); m != "" {
		if n, err := strconv.Atoi(m); err == nil && n > 0 {
			return n
		}
	}
	return defaultDurationDays
}

// LineItems maps the display price onto the pricing engine.
func (p Package) LineItems() pricing.LineItems {
	return pricing.FromPriceTag(p.Price)
}

// Fee returns the package's own service fee, or fallback when it has none.
func (p Package) Fee(fallback pricing.Fee) pricing.Fee {
	if p.ServiceFeePercent == nil {
		return fallback
	}
	return pricing.FeeFromPercent(*p.ServiceFeePercent)
}

type Guide struct {
	ID          string   `yaml:"id" json:"id" validate:"required"`
	Name        string   `yaml:"name" json:"name" validate:"required"`
	Location    string   `yaml:"location" json:"location"`
	Description string   `yaml:"description" json:"description"`
	Photo       string   `yaml:"photo" json:"photo" validate:"omitempty,url"`
	Specialties []string `yaml:"specialties" json:"specialties,omitempty"`
}

type file struct {
	Packages  []Package                       `yaml:"packages" validate:"dive"`
	Guides    []Guide                         `yaml:"guides" validate:"dive"`
	Questions []quiz.Question                 `yaml:"questions"`
	Profiles  map[quiz.ProfileKey]quiz.Profile `yaml:"profiles" validate:"dive"`
}

type Catalog struct {
	packages    []Package
	packageByID map[int]Package
	bySlug      map[string]Package
	guides      []Guide
	guideByID   map[string]Guide
	questions   []quiz.Question
	profiles    map[quiz.ProfileKey]quiz.Profile
}

// Default parses the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog file, or the built-in one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validator.New().Struct(f); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	if err := quiz.ValidateBank(f.Questions); err != nil {
		return nil, err
	}

	c := &Catalog{
		packages:    f.Packages,
		packageByID: make(map[int]Package, len(f.Packages)),
		bySlug:      make(map[string]Package, len(f.Packages)),
		guides:      f.Guides,
		guideByID:   make(map[string]Guide, len(f.Guides)),
		questions:   f.Questions,
		profiles:    f.Profiles,
	}
	for _, g := range f.Guides {
		if _, dup := c.guideByID[g.ID]; dup {
			return nil, fmt.Errorf("validate catalog: duplicate guide %q", g.ID)
		}
		c.guideByID[g.ID] = g
	}
	for _, p := range f.Packages {
		if _, dup := c.packageByID[p.ID]; dup {
			return nil, fmt.Errorf("validate catalog: duplicate package id %d", p.ID)
		}
		if _, dup := c.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("validate catalog: duplicate package slug %q", p.Slug)
		}
		if p.GuideID != "" {
			if _, ok := c.guideByID[p.GuideID]; !ok {
				return nil, fmt.Errorf("validate catalog: package %q references unknown guide %q", p.Slug, p.GuideID)
			}
		}
		c.packageByID[p.ID] = p
		c.bySlug[p.Slug] = p
	}
	for _, k := range quiz.TieBreakOrder {
		if _, ok := f.Profiles[k]; !ok {
			return nil, fmt.Errorf("validate catalog: missing profile %q", k)
		}
	}
	return c, nil
}

// Packages returns the packaged trips in catalog order.
func (c *Catalog) Packages() []Package {
	return append([]Package(nil), c.packages...)
}

func (c *Catalog) PackageByID(id int) (Package, bool) {
	p, ok := c.packageByID[id]
	return p, ok
}

func (c *Catalog) PackageBySlug(slug string) (Package, bool) {
	p, ok := c.bySlug[slug]
	return p, ok
}

func (c *Catalog) Guides() []Guide {
	return append([]Guide(nil), c.guides...)
}

func (c *Catalog) GuideByID(id string) (Guide, bool) {
	g, ok := c.guideByID[id]
	return g, ok
}

// Questions returns the quiz bank in presentation order.
func (c *Catalog) Questions() []quiz.Question {
	return append([]quiz.Question(nil), c.questions...)
}

func (c *Catalog) Profile(key quiz.ProfileKey) (quiz.Profile, bool) {
	p, ok := c.profiles[key]
	return p, ok
}
