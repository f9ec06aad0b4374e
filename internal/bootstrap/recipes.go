package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/osse101/mudcraft/internal/domain"
	"github.com/osse101/mudcraft/internal/recipe"
)

// LoadRecipes loads, validates and registers the recipe file at path.
// It handles the complete lifecycle: load and schema-check YAML → validate against the
// catalog → register in the store → log results. A missing file is not an
// error; builders can author everything with recedit.
func LoadRecipes(path string, store *recipe.Store, catalog domain.Catalog) error {
	if path == "" {
		slog.Info(LogMsgNoRecipeFile)
		return nil
	}
	slog.Info(LogMsgLoadingRecipes, "path", path)
	loader := recipe.NewLoader()

	file, err := loader.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info(LogMsgNoRecipeFile, "path", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadRecipe, err)
	}

	if err := loader.Validate(file, catalog); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidRecipes, err)
	}

	res, err := loader.Sync(file, store)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncRecipe, err)
	}

	slog.Info(LogMsgRecipesLoaded,
		"inserted", res.Inserted,
		"skipped", res.Skipped,
		"total", store.Len())
	return nil
}
