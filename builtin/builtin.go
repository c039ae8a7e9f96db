// Package builtin provides the bundled workflow components: image
// generation, audio transcription, web crawling, places search, and PDF
// page extraction. Each component adapts validated parameters to one
// capability call and returns the payload shape its Meta declares.
package builtin

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/nodekit/nodekit"
)

// Deps carries the capability implementations the components call through.
// A nil field leaves the matching component unregistered, so hosts can run
// with only the backends they have credentials for.
type Deps struct {
	Images      nodekit.ImageGenerator
	Transcriber nodekit.Transcriber
	Crawler     nodekit.Crawler
	Places      nodekit.PlaceSearcher
	PDF         nodekit.PageExtractor
}

// Register adds every component whose capability is configured to r.
func Register(r *nodekit.Registry, d Deps) error {
	var components []nodekit.Component
	if d.Images != nil {
		components = append(components, NewImageGeneration(d.Images))
	}
	if d.Transcriber != nil {
		components = append(components, NewAudioTranscript(d.Transcriber))
	}
	if d.Crawler != nil {
		components = append(components, NewWebCrawler(d.Crawler))
	}
	if d.Places != nil {
		components = append(components, NewPlacesSearch(d.Places))
	}
	if d.PDF != nil {
		components = append(components, NewPDFPages(d.PDF))
	}
	for _, c := range components {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Metas returns the metadata of every bundled component, sorted by name,
// independent of which capabilities are configured.
func Metas() []nodekit.Meta {
	components := []nodekit.Component{
		NewAudioTranscript(nil),
		NewImageGeneration(nil),
		NewPDFPages(nil),
		NewPlacesSearch(nil),
		NewWebCrawler(nil),
	}
	metas := make([]nodekit.Meta, len(components))
	for i, c := range components {
		metas[i] = c.Meta()
	}
	return metas
}

// decode maps defaulted, validated params onto a typed argument struct.
func decode(params nodekit.Params, out any) error {
	if err := mapstructure.Decode(params, out); err != nil {
		return fmt.Errorf("invalid parameters: %v: %w", err, nodekit.ErrValidation)
	}
	return nil
}
