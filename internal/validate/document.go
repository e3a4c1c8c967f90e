package validate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drewhinkson/stylepanel/internal/document"
	"github.com/drewhinkson/stylepanel/internal/styler"
)

// Document validates the design document: unique element and style names,
// style references resolving to definitions, a selection pointing at a real
// element, and well-formed color values.
func Document(_ context.Context, path string) Result {
	result := Result{}

	if _, err := os.Stat(path); err != nil {
		result.AddWarning("No design document found")
		result.AddPending(filepath.Base(path) + " not found")
		result.AddItem(StatusPending, filepath.Base(path), "not found")
		return result
	}

	store, err := document.Open(path)
	if err != nil {
		result.AddError(fmt.Sprintf("Document: %v", err))
		result.AddItem(StatusError, filepath.Base(path), err.Error())
		return result
	}

	doc := store.Snapshot()

	styleNames := make(map[string]bool, len(doc.Styles))
	for _, st := range doc.Styles {
		if st.Name == "" {
			result.AddError("Document: style with empty name")
			result.AddItem(StatusError, "styles", "empty style name")
			continue
		}
		if styleNames[st.Name] {
			result.AddError(fmt.Sprintf("Document: duplicate style %q", st.Name))
			result.AddItem(StatusError, st.Name, "duplicate style name")
			continue
		}
		styleNames[st.Name] = true

		if color, ok := st.Properties["color"]; ok && !styler.IsHexColor(color) {
			result.AddWarning(fmt.Sprintf("style %q: color %q is not a hex value", st.Name, color))
			result.AddItem(StatusWarning, st.Name, "non-hex color "+color)
			continue
		}
		result.AddItem(StatusSuccess, st.Name, "")
	}

	elementIDs := make(map[string]bool, len(doc.Elements))
	for _, el := range doc.Elements {
		if el.ID == "" {
			result.AddError("Document: element with empty id")
			result.AddItem(StatusError, "elements", "empty element id")
			continue
		}
		if elementIDs[el.ID] {
			result.AddError(fmt.Sprintf("Document: duplicate element %q", el.ID))
			result.AddItem(StatusError, el.ID, "duplicate element id")
			continue
		}
		elementIDs[el.ID] = true

		dangling := false
		for _, ref := range el.Styles {
			if !styleNames[ref] {
				result.AddError(fmt.Sprintf("Document: element %q references missing style %q", el.ID, ref))
				result.AddItem(StatusError, el.ID, "missing style "+ref)
				dangling = true
			}
		}
		if !dangling {
			result.AddItem(StatusSuccess, el.ID, "")
		}
	}

	if doc.Selected != "" && !elementIDs[doc.Selected] {
		result.AddError(fmt.Sprintf("Document: selection %q is not an element", doc.Selected))
		result.AddItem(StatusError, "selected", doc.Selected+" not found")
	}

	return result
}
