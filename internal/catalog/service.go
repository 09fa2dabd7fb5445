// Package catalog serves named item definitions and builds them through the
// itemdsl facade: plain definitions in create mode, definitions with a base
// in copy mode and edits of caller stacks in mutate mode.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/itemforge/configs"
	"github.com/osse101/itemforge/internal/domain"
	"github.com/osse101/itemforge/internal/item"
	"github.com/osse101/itemforge/internal/itemdsl"
	"github.com/osse101/itemforge/internal/logger"
	"github.com/osse101/itemforge/internal/metrics"
	"github.com/osse101/itemforge/internal/player"
	"github.com/osse101/itemforge/internal/text"
)

// Service defines the interface for catalog operations
type Service interface {
	// Names lists definition names in catalog order
	Names() []string
	Definition(name string) (item.Def, error)
	// Describe resolves a definition's material and title through its bases
	Describe(name string) (Summary, error)
	Build(ctx context.Context, name string) (*domain.ItemStack, error)
	// BuildDef builds an ad-hoc definition; its base may name a catalog item
	BuildDef(ctx context.Context, def item.Def) (*domain.ItemStack, error)
	// Edit applies def to stack in place and returns the same stack
	Edit(ctx context.Context, stack *domain.ItemStack, def item.Def) (*domain.ItemStack, error)
	Reload(ctx context.Context) error
	// CheckHealth reports whether a catalog is loaded
	CheckHealth(ctx context.Context) error
}

// Summary is a catalog entry with values inherited from its bases resolved
type Summary struct {
	Name     string
	Base     string
	Material domain.Material
	// Title is the plain display name, or the material's title without one
	Title string
}

// playerRecorder is a directory that learns players from the stacks it sees
type playerRecorder interface {
	Observe(profile domain.PlayerProfile) bool
}

type service struct {
	loader    item.Loader
	path      string
	directory player.Directory

	mu    sync.RWMutex
	defs  map[string]item.Def
	order []string
}

// NewService loads the catalog at path, or the embedded default catalog
// when path is empty
func NewService(loader item.Loader, path string, dir player.Directory) (Service, error) {
	if dir == nil {
		dir = player.NewOfflineDirectory()
	}
	s := &service{
		loader:    loader,
		path:      path,
		directory: dir,
	}
	if err := s.Reload(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *service) Definition(name string) (item.Def, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.defs[name]
	if !ok {
		return item.Def{}, fmt.Errorf(ErrFmtItemNotFound, domain.ErrItemNotFound, name)
	}
	return def, nil
}

func (s *service) Describe(name string) (Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.defs[name]
	if !ok {
		return Summary{}, fmt.Errorf(ErrFmtItemNotFound, domain.ErrItemNotFound, name)
	}
	return describe(s.defs, def)
}

// describe walks def's base chain for the nearest material and display name
func describe(defs map[string]item.Def, def item.Def) (Summary, error) {
	sum := Summary{Name: def.Name, Base: def.Base}
	var (
		material    string
		displayName *string
	)

	for depth := 0; ; depth++ {
		if depth > maxBaseDepth {
			return Summary{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgBaseChainDeep)
		}
		if material == "" {
			material = def.Material
		}
		if displayName == nil {
			displayName = def.DisplayName
		}
		if def.Base == "" || (material != "" && displayName != nil) {
			break
		}
		next, ok := defs[def.Base]
		if !ok {
			return Summary{}, fmt.Errorf(ErrFmtBaseNotFound, domain.ErrItemNotFound, def.Base, def.Name)
		}
		def = next
	}

	m, err := domain.ParseMaterial(material)
	if err != nil {
		return Summary{}, err
	}
	sum.Material = m
	if displayName != nil {
		sum.Title = text.Strip(text.Colorize(*displayName))
	}
	if sum.Title == "" {
		sum.Title = m.Title()
	}
	return sum, nil
}

// checkInherited validates def against the material it inherits from its base
func (s *service) checkInherited(defs map[string]item.Def, def item.Def) error {
	if def.Base == "" || def.Material != "" {
		return nil
	}
	sum, err := describe(defs, def)
	if err != nil {
		return err
	}
	def.Material = string(sum.Material)
	return s.loader.ValidateDef(&def)
}

func (s *service) Build(ctx context.Context, name string) (*domain.ItemStack, error) {
	def, err := s.Definition(name)
	if err != nil {
		return nil, err
	}
	return s.build(ctx, def)
}

func (s *service) BuildDef(ctx context.Context, def item.Def) (*domain.ItemStack, error) {
	if err := s.loader.ValidateDef(&def); err != nil {
		return nil, err
	}
	if def.Base != "" {
		if _, err := s.Definition(def.Base); err != nil {
			return nil, fmt.Errorf(ErrFmtBaseNotFound, domain.ErrInvalidInput, def.Base, def.Name)
		}
		s.mu.RLock()
		err := s.checkInherited(s.defs, def)
		s.mu.RUnlock()
		if err != nil {
			return nil, err
		}
	}
	return s.build(ctx, def)
}

func (s *service) build(ctx context.Context, def item.Def) (*domain.ItemStack, error) {
	log := logger.FromContext(ctx)
	mode := metrics.ModeCreate
	if def.Base != "" {
		mode = metrics.ModeCopy
	}

	stack, err := s.buildDepth(ctx, def, 0)
	if err != nil {
		metrics.BuildErrors.WithLabelValues(mode).Inc()
		log.Warn(LogMsgBuildFailed, "item", def.Name, "mode", mode, "error", err)
		return nil, fmt.Errorf(ErrFmtBuildFailed, def.Name, err)
	}

	metrics.ItemsBuilt.WithLabelValues(mode).Inc()
	log.Debug(LogMsgItemBuilt, "item", def.Name, "mode", mode, "material", stack.Type)
	return stack, nil
}

func (s *service) buildDepth(ctx context.Context, def item.Def, depth int) (*domain.ItemStack, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if depth > maxBaseDepth {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgBaseChainDeep)
	}

	opts := itemdsl.Options{Directory: s.directory}
	withMaterial := false
	if def.Base != "" {
		baseDef, err := s.Definition(def.Base)
		if err != nil {
			return nil, err
		}
		base, err := s.buildDepth(ctx, baseDef, depth+1)
		if err != nil {
			return nil, err
		}
		opts.Item = base
		withMaterial = true
	} else {
		m, err := domain.ParseMaterial(def.Material)
		if err != nil {
			return nil, err
		}
		opts.Material = m
	}

	assigns, err := assignments(&def, s.directory, withMaterial)
	if err != nil {
		return nil, err
	}

	it, err := itemdsl.New(opts)
	if err != nil {
		return nil, err
	}
	if err := it.Apply(assigns...); err != nil {
		return nil, err
	}
	return it.Build(), nil
}

func (s *service) Edit(ctx context.Context, stack *domain.ItemStack, def item.Def) (*domain.ItemStack, error) {
	log := logger.FromContext(ctx)

	if stack == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNilStack)
	}
	if def.Base != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEditWithBase)
	}

	// Validation needs a name and a material; the stack supplies them when
	// the edit does not change the material.
	checked := def
	if checked.Name == "" {
		checked.Name = editName
	}
	if checked.Material == "" {
		checked.Material = string(stack.Type)
	}
	if err := s.loader.ValidateDef(&checked); err != nil {
		return nil, err
	}

	if rec, ok := s.directory.(playerRecorder); ok && stack.Meta != nil && stack.Meta.Owner != nil {
		if rec.Observe(*stack.Meta.Owner) {
			log.Debug(LogMsgOwnerRecorded, "player", stack.Meta.Owner.Name)
		}
	}

	fail := func(err error) (*domain.ItemStack, error) {
		metrics.BuildErrors.WithLabelValues(metrics.ModeMutate).Inc()
		log.Warn(LogMsgBuildFailed, "item", checked.Name, "mode", metrics.ModeMutate, "error", err)
		return nil, err
	}

	assigns, err := assignments(&def, s.directory, true)
	if err != nil {
		return fail(err)
	}
	it, err := itemdsl.New(itemdsl.Options{Item: stack, Mutate: true, Directory: s.directory})
	if err != nil {
		return fail(err)
	}
	if err := it.Apply(assigns...); err != nil {
		return fail(err)
	}

	metrics.ItemsBuilt.WithLabelValues(metrics.ModeMutate).Inc()
	log.Debug(LogMsgItemEdited, "material", stack.Type, "assignments", len(assigns))
	return it.Build(), nil
}

// Reload re-reads the catalog source. A failed reload keeps the current catalog.
func (s *service) Reload(ctx context.Context) error {
	log := logger.FromContext(ctx)

	fail := func(err error) error {
		metrics.CatalogReloads.WithLabelValues(metrics.ResultFailure).Inc()
		log.Error(LogMsgCatalogReloadFail, "path", s.path, "error", err)
		return err
	}

	cfg, err := s.read()
	if err == nil {
		err = s.loader.Validate(cfg)
	}
	if err != nil {
		return fail(err)
	}

	defs := make(map[string]item.Def, len(cfg.Items))
	order := make([]string, 0, len(cfg.Items))
	for _, def := range cfg.Items {
		defs[def.Name] = def
		order = append(order, def.Name)
	}
	for _, name := range order {
		if err := s.checkInherited(defs, defs[name]); err != nil {
			return fail(err)
		}
	}

	s.mu.Lock()
	s.defs = defs
	s.order = order
	s.mu.Unlock()

	metrics.CatalogReloads.WithLabelValues(metrics.ResultSuccess).Inc()
	metrics.CatalogItems.Set(float64(len(order)))
	log.Info(LogMsgCatalogLoaded, "path", s.path, "items", len(order), "version", cfg.Version)
	return nil
}

func (s *service) CheckHealth(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.order) == 0 {
		return fmt.Errorf("%w: %s", item.ErrInvalidConfig, ErrMsgCatalogEmpty)
	}
	return ctx.Err()
}

func (s *service) read() (*item.Config, error) {
	if s.path == "" {
		return s.loader.Parse(configs.DefaultItems)
	}
	return s.loader.Load(s.path)
}
