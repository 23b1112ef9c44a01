// SPDX-License-Identifier: Apache-2.0

package audit

import "strings"

// ModelBuildingMarker is the literal naming the model-building method.
const ModelBuildingMarker = "モデル建物法"

// Classify decides which methodology produced text. The marker string or the
// "BEIm" label selects ModelBuilding; anything else is StandardInput.
func Classify(text string) Methodology {
	if strings.Contains(text, ModelBuildingMarker) || strings.Contains(text, "BEIm") {
		return ModelBuilding
	}
	return StandardInput
}
