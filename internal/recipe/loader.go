package recipe

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/mudcraft/internal/domain"
	"github.com/osse101/mudcraft/internal/validation"
)

// SchemaPath locates the recipe file schema inside Schemas
const SchemaPath = "schemas/recipes.schema.json"

// Schemas holds the JSON schemas for recipe configuration
//
//go:embed schemas/*.json
var Schemas embed.FS

// Sentinel errors for the recipe loader
var (
	ErrInvalidConfig = errors.New("invalid recipe configuration")
	ErrInvalidItem   = errors.New("invalid item reference")
)

// File is the on-disk recipe configuration
type File struct {
	Version     string      `yaml:"version"`
	Description string      `yaml:"description"`
	Recipes     []RecipeDef `yaml:"recipes"`
}

// RecipeDef is a single recipe as written in the configuration. Taxonomy
// fields use their names so the file stays readable; station may list
// several capabilities separated by spaces ("forge anvil").
type RecipeDef struct {
	VNUM        domain.VNUM     `yaml:"vnum"`
	Name        string          `yaml:"name"`
	Skill       string          `yaml:"skill"`
	MinSkillPct int             `yaml:"min_skill_pct"`
	MinLevel    int             `yaml:"min_level"`
	Station     string          `yaml:"station"`
	StationVNUM domain.VNUM     `yaml:"station_vnum"`
	Discovery   string          `yaml:"discovery"`
	Ingredients []IngredientDef `yaml:"ingredients"`
	Product     IngredientDef   `yaml:"product"`
}

// IngredientDef is a vnum and quantity pair
type IngredientDef struct {
	VNUM     domain.VNUM `yaml:"vnum"`
	Quantity int         `yaml:"quantity"`
}

// SyncResult reports what a sync did to the store
type SyncResult struct {
	Inserted int
	Skipped  int
}

// Loader reads, checks and registers recipe configuration
type Loader interface {
	Load(path string) (*File, error)
	Validate(file *File, catalog domain.Catalog) error
	Sync(file *File, store *Store) (*SyncResult, error)
}

type loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader
func NewLoader() Loader {
	return &loader{
		schemaValidator: validation.NewSchemaValidator(Schemas),
	}
}

// Load reads a recipe file, checks it against the schema and parses it
func (l *loader) Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe config file: %w", err)
	}

	if err := l.schemaValidator.ValidateBytes(data, SchemaPath); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse recipe config: %w", err)
	}
	return &file, nil
}

// Validate checks every definition for shape errors and dangling prototype
// references. The first problem found is reported.
func (l *loader) Validate(file *File, catalog domain.Catalog) error {
	if file == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	seen := make(map[domain.VNUM]bool, len(file.Recipes))
	for i, def := range file.Recipes {
		if def.VNUM <= domain.VNUMNone {
			return fmt.Errorf("%w: recipe at index %d has no vnum", ErrInvalidConfig, i)
		}
		if seen[def.VNUM] {
			return fmt.Errorf("recipe %d: %w", def.VNUM, domain.ErrDuplicateVNUM)
		}
		seen[def.VNUM] = true

		if _, err := def.toRecipe(); err != nil {
			return err
		}

		if _, ok := catalog.ObjectPrototype(def.Product.VNUM); !ok {
			return fmt.Errorf("%w: recipe %d product references missing object %d", ErrInvalidItem, def.VNUM, def.Product.VNUM)
		}
		for j, ing := range def.Ingredients {
			if _, ok := catalog.ObjectPrototype(ing.VNUM); !ok {
				return fmt.Errorf("%w: recipe %d ingredient[%d] references missing object %d", ErrInvalidItem, def.VNUM, j, ing.VNUM)
			}
		}
		if def.StationVNUM != domain.VNUMNone {
			p, ok := catalog.ObjectPrototype(def.StationVNUM)
			if !ok || p.Type != domain.ItemWorkstation {
				return fmt.Errorf("%w: recipe %d station_vnum %d is not a workstation", ErrInvalidItem, def.VNUM, def.StationVNUM)
			}
		}
	}
	return nil
}

// Sync registers every recipe the store does not already hold. Existing
// vnums are left alone so in-session edits survive a reload.
func (l *loader) Sync(file *File, store *Store) (*SyncResult, error) {
	res := &SyncResult{}
	for _, def := range file.Recipes {
		if _, exists := store.Get(def.VNUM); exists {
			res.Skipped++
			continue
		}
		r, err := def.toRecipe()
		if err != nil {
			return res, err
		}
		if err := store.Add(r); err != nil {
			return res, fmt.Errorf("failed to register recipe %d: %w", def.VNUM, err)
		}
		res.Inserted++
	}
	return res, nil
}

func (def RecipeDef) toRecipe() (*domain.Recipe, error) {
	r := domain.NewRecipe(def.VNUM)
	if def.Name != "" {
		r.Name = def.Name
	}
	r.MinSkillPct = def.MinSkillPct
	r.MinLevel = def.MinLevel
	r.StationVNUM = def.StationVNUM
	r.ProductVNUM = def.Product.VNUM
	if def.Product.Quantity > 0 {
		r.ProductQuantity = def.Product.Quantity
	}

	if def.Skill != "" {
		skill, ok := domain.LookupSkill(def.Skill)
		if !ok {
			return nil, fmt.Errorf("%w: recipe %d has unknown skill %q", ErrInvalidConfig, def.VNUM, def.Skill)
		}
		r.RequiredSkill = skill
	}
	if def.Station != "" {
		station, ok := domain.ParseWorkstationFlags(def.Station)
		if !ok {
			return nil, fmt.Errorf("%w: recipe %d has unknown station %q (valid: %s)",
				ErrInvalidConfig, def.VNUM, def.Station, strings.Join(domain.WorkstationTypeNames(), ", "))
		}
		r.StationType = station
	}
	if def.Discovery != "" {
		discovery, ok := domain.ParseDiscoveryType(def.Discovery)
		if !ok {
			return nil, fmt.Errorf("%w: recipe %d has unknown discovery %q (valid: %s)",
				ErrInvalidConfig, def.VNUM, def.Discovery, strings.Join(domain.DiscoveryTypeNames(), ", "))
		}
		r.Discovery = discovery
	}

	if len(def.Ingredients) == 0 {
		return nil, fmt.Errorf("%w: recipe %d has no ingredients", ErrInvalidConfig, def.VNUM)
	}
	for j, ing := range def.Ingredients {
		if ing.Quantity <= 0 {
			return nil, fmt.Errorf("%w: recipe %d ingredient[%d] has non-positive quantity", ErrInvalidConfig, def.VNUM, j)
		}
		if err := r.AddIngredient(ing.VNUM, ing.Quantity); err != nil {
			return nil, fmt.Errorf("recipe %d: %w", def.VNUM, err)
		}
	}

	if err := Validate(r); err != nil {
		return nil, fmt.Errorf("recipe %d: %w", def.VNUM, err)
	}
	return r, nil
}
