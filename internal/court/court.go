// Package court holds the fixed geometry of the NBA half court and the
// named zone partition used to bucket shot attempts.
//
// Coordinate system: origin at the center of the hoop, x from -250 to 250
// (left to right), y from -47.5 (baseline) to 422.5 (half court), in tenths
// of a foot.
package court

// Dimensions describes the half-court geometry the shot chart draws.
type Dimensions struct {
	XMin             float64 `json:"x_min"`
	XMax             float64 `json:"x_max"`
	YMin             float64 `json:"y_min"`
	YMax             float64 `json:"y_max"`
	HoopRadius       float64 `json:"hoop_radius"`
	BackboardWidth   float64 `json:"backboard_width"`
	BackboardY       float64 `json:"backboard_y"`
	PaintWidth       float64 `json:"paint_width"`
	PaintLength      float64 `json:"paint_length"`
	FTCircleY        float64 `json:"ft_circle_y"`
	FTCircleRadius   float64 `json:"ft_circle_radius"`
	ThreePtCornerX   float64 `json:"three_pt_corner_x"`
	ThreePtCornerY   float64 `json:"three_pt_corner_y"`
	ThreePtArcRadius float64 `json:"three_pt_arc_radius"`
	RestrictedRadius float64 `json:"restricted_radius"`
}

// Dims returns the standard NBA half-court dimensions.
func Dims() Dimensions {
	return Dimensions{
		XMin:             -250,
		XMax:             250,
		YMin:             -47.5,
		YMax:             422.5,
		HoopRadius:       7.5,
		BackboardWidth:   60,
		BackboardY:       -7.5,
		PaintWidth:       160,
		PaintLength:      190,
		FTCircleY:        142.5,
		FTCircleRadius:   60,
		ThreePtCornerX:   220,
		ThreePtCornerY:   92.5,
		ThreePtArcRadius: 237.5,
		RestrictedRadius: 40,
	}
}
