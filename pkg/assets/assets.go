// Package assets resolves request scenes into client asset bundles. A scene
// is a request-level flag widening which assets a response delivers: widget
// types carrying a scene option escalate the request during Load, and the
// hosting layer asks this package which scripts and stylesheets that scene
// implies. Bundles are described as go-theme manifests, one theme per scene.
package assets

import (
	"fmt"
	"path"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Bundle is the resolved asset set for one scene.
type Bundle struct {
	Scene       string
	Scripts     []string
	Stylesheets []string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithVariant selects a manifest variant for every lookup.
func WithVariant(variant string) Option {
	return func(r *Resolver) {
		r.variant = variant
	}
}

// WithDefaultScene sets the scene used when a request never escalated.
// Defaults to "public".
func WithDefaultScene(scene string) Option {
	return func(r *Resolver) {
		r.fallback = scene
	}
}

// Resolver maps scene names to asset bundles through a go-theme selector.
type Resolver struct {
	selector theme.ThemeSelector
	variant  string
	fallback string
}

// New constructs a Resolver over the given selector.
func New(selector theme.ThemeSelector, options ...Option) *Resolver {
	r := &Resolver{
		selector: selector,
		fallback: "public",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Bundle resolves the asset bundle for a scene. An empty scene falls back to
// the default. File classification follows extension: .js lands in Scripts,
// .css in Stylesheets; anything else is ignored. Variant asset files
// override base files of the same name.
func (r *Resolver) Bundle(scene string) (Bundle, error) {
	if scene == "" {
		scene = r.fallback
	}

	selection, err := r.selector.Select(scene, r.variant)
	if err != nil {
		return Bundle{}, fmt.Errorf("assets: select scene %q: %w", scene, err)
	}
	if selection == nil || selection.Manifest == nil {
		return Bundle{Scene: scene}, nil
	}

	manifest := selection.Manifest
	files := make(map[string]string, len(manifest.Assets.Files))
	for name, file := range manifest.Assets.Files {
		files[name] = file
	}
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for name, file := range variant.Assets.Files {
			files[name] = file
		}
	}

	bundle := Bundle{Scene: scene}
	for _, name := range sortedKeys(files) {
		url := assetURL(manifest.Assets.Prefix, files[name])
		switch strings.ToLower(path.Ext(files[name])) {
		case ".js":
			bundle.Scripts = append(bundle.Scripts, url)
		case ".css":
			bundle.Stylesheets = append(bundle.Stylesheets, url)
		}
	}
	return bundle, nil
}

func assetURL(prefix, file string) string {
	if prefix == "" {
		return file
	}
	return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(file, "/")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
