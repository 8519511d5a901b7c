package predictor

import (
	"encoding/json"
	"fmt"
	"math"
)

// MushroomType names the predicted species. The service sends either a bare
// common name or an object with common and scientific names.
type MushroomType struct {
	Common     string `json:"common"`
	Scientific string `json:"scientific,omitempty"`
}

// UnmarshalJSON accepts both the string and the object form.
func (m *MushroomType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*m = MushroomType{Common: name}
		return nil
	}

	var obj struct {
		Common     string `json:"common"`
		Scientific string `json:"scientific"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("mushroomType must be a string or {common, scientific}: %w", err)
	}
	*m = MushroomType(obj)
	return nil
}

func (m MushroomType) String() string {
	if m.Scientific == "" {
		return m.Common
	}
	return fmt.Sprintf("%s (%s)", m.Common, m.Scientific)
}

// TextureFeatures are the gray-level co-occurrence and intensity statistics
// the service derived from the image. The last five are only sent by newer
// service builds and are zero otherwise.
type TextureFeatures struct {
	Contrast    float64 `json:"contrast"`
	Correlation float64 `json:"correlation"`
	Energy      float64 `json:"energy"`
	Homogeneity float64 `json:"homogeneity"`
	Entropy     float64 `json:"entropy"`
	RMS         float64 `json:"rms,omitempty"`
	Smoothness  float64 `json:"smoothness,omitempty"`
	Skewness    float64 `json:"skewness,omitempty"`
	Variance    float64 `json:"variance,omitempty"`
	Kurtosis    float64 `json:"kurtosis,omitempty"`
}

// Features are optional diagnostics attached to a prediction.
type Features struct {
	ColorMean       [3]float64      `json:"colorMean"`
	TextureFeatures TextureFeatures `json:"textureFeatures"`
}

// Prediction is a validated classification result.
type Prediction struct {
	MushroomType MushroomType `json:"mushroomType"`
	Confidence   float64      `json:"confidence"`
	ClassID      int          `json:"classId"`
	Features     *Features    `json:"features,omitempty"`
}

// Health is the service's health check payload.
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type wirePrediction struct {
	MushroomType *MushroomType `json:"mushroomType"`
	Confidence   *float64      `json:"confidence"`
	ClassID      *float64      `json:"classId"`
	Features     *Features     `json:"features"`
}

// Decode parses and validates a prediction response body. The body must carry
// a non-empty mushroom type, a confidence within 0-100, and an integral class
// identifier; anything else wraps ErrMalformed.
func Decode(data []byte) (*Prediction, error) {
	var w wirePrediction
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if w.MushroomType == nil || w.MushroomType.Common == "" {
		return nil, fmt.Errorf("%w: missing mushroomType", ErrMalformed)
	}
	if w.Confidence == nil {
		return nil, fmt.Errorf("%w: missing confidence", ErrMalformed)
	}
	if c := *w.Confidence; math.IsNaN(c) || c < 0 || c > 100 {
		return nil, fmt.Errorf("%w: confidence out of range: %v", ErrMalformed, c)
	}
	if w.ClassID == nil {
		return nil, fmt.Errorf("%w: missing classId", ErrMalformed)
	}
	if id := *w.ClassID; id != math.Trunc(id) || math.Abs(id) > math.MaxInt32 {
		return nil, fmt.Errorf("%w: classId is not an integer: %v", ErrMalformed, id)
	}

	return &Prediction{
		MushroomType: *w.MushroomType,
		Confidence:   *w.Confidence,
		ClassID:      int(*w.ClassID),
		Features:     w.Features,
	}, nil
}
