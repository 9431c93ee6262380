package sigil

import "crypto/sha256"

// Params are the five drawing parameters derived from a seed. Two generators
// built from the same seed always derive identical values.
type Params struct {
	RotationOffset float64 // degrees, [0, 360]
	LayerCount     int     // [3, 7]
	RayCount       int     // [6, 12]
	LineWeight     int     // stroke width in pixels, [1, 5]
	ScaleFactor    float64 // [0.7, 1.3]
}

// DeriveParams maps the first five bytes of the seed's SHA-256 digest onto
// drawing parameters. The digest algorithm is part of the reproducibility
// contract: two processes must agree on it to render identical sigils.
func DeriveParams(seed string) Params {
	sum := sha256.Sum256([]byte(seed))
	return Params{
		RotationOffset: float64(sum[0]) / 255 * 360,
		LayerCount:     3 + int(sum[1]%5),
		RayCount:       6 + int(sum[2]%7),
		LineWeight:     1 + int(sum[3]%5),
		ScaleFactor:    0.7 + float64(sum[4])/255*0.6,
	}
}
