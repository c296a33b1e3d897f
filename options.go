package scripta

import "github.com/tsawler/scripta/model"

// convertOptions holds configuration for a conversion.
type convertOptions struct {
	// Style profile; nil means styles.Relaxed.
	profile map[string]*model.Element

	// Rendering options
	displayLinks        bool
	displayAnchors      bool
	displayImages       bool
	deduplicateCaptions bool

	// Annotation mapping; nil means no annotations
	annotations map[string][]string
}

// defaultOptions returns the default conversion options.
func defaultOptions() convertOptions {
	return convertOptions{
		profile:             nil, // nil means the relaxed profile
		displayLinks:        false,
		displayAnchors:      false,
		displayImages:       false,
		deduplicateCaptions: false,
		annotations:         nil,
	}
}

// clone creates a deep copy of convertOptions.
func (o convertOptions) clone() convertOptions {
	newOpts := convertOptions{
		profile:             o.profile,
		displayLinks:        o.displayLinks,
		displayAnchors:      o.displayAnchors,
		displayImages:       o.displayImages,
		deduplicateCaptions: o.deduplicateCaptions,
	}

	// Deep copy the annotation mapping
	if o.annotations != nil {
		newOpts.annotations = make(map[string][]string, len(o.annotations))
		for k, v := range o.annotations {
			newOpts.annotations[k] = append([]string(nil), v...)
		}
	}

	return newOpts
}
