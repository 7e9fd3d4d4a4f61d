package court

// ShapeType tells the display layer how to draw a zone.
type ShapeType string

const (
	ShapeRect    ShapeType = "rect"
	ShapePolygon ShapeType = "polygon"
	ShapeArc     ShapeType = "arc"
)

// ZoneKey is the classifier triple assigned to every shot upstream.
// Classification at aggregation time is a lookup on this triple; the shape
// data below is display configuration only.
type ZoneKey struct {
	Basic string `json:"basic"`
	Area  string `json:"area"`
	Range string `json:"range"`
}

// Point is one vertex of a polygon zone.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Zone is one named region of the court. The renderer translates zones into
// display shapes, so no JSON surface is defined here.
type Zone struct {
	Name  string
	Key   ZoneKey
	Shape ShapeType

	// Rect bounds (Shape == ShapeRect).
	XMin, YMin, XMax, YMax float64

	// Polygon corners (Shape == ShapePolygon).
	Corners []Point

	// Arc parameters (Shape == ShapeArc), angles in degrees with 0 = right.
	CenterX, CenterY, Radius float64
	AngleStart, AngleEnd     float64

	// Label anchor for the zone name on the chart.
	LabelX, LabelY float64
}

// Unclassified is the diagnostic bucket for shots whose classifier triple
// matches no configured zone.
const Unclassified = "Unclassified"

// Zones returns the fixed partition of the half court, derived from the
// observed NBA shot-zone boundaries. Order is stable.
func Zones() []Zone {
	return []Zone{
		{
			Name:    "Restricted Area",
			Key:     ZoneKey{"Restricted Area", "Center(C)", "Less Than 8 ft."},
			Shape:   ShapeArc,
			CenterX: 0, CenterY: 0, Radius: 40,
			AngleStart: -90, AngleEnd: 90,
			LabelX: 0, LabelY: -5,
		},
		{
			Name:  "Paint <8ft Center",
			Key:   ZoneKey{"In The Paint (Non-RA)", "Center(C)", "Less Than 8 ft."},
			Shape: ShapeRect,
			XMin:  -80, YMin: -51, XMax: 80, YMax: 80,
			LabelX: 0, LabelY: 15,
		},
		{
			Name:  "Paint 8-16ft Left",
			Key:   ZoneKey{"In The Paint (Non-RA)", "Left Side(L)", "8-16 ft."},
			Shape: ShapeRect,
			XMin:  -80, YMin: 70, XMax: -41, YMax: 138,
			LabelX: -60, LabelY: 100,
		},
		{
			Name:  "Paint 8-16ft Right",
			Key:   ZoneKey{"In The Paint (Non-RA)", "Right Side(R)", "8-16 ft."},
			Shape: ShapeRect,
			XMin:  41, YMin: 70, XMax: 80, YMax: 138,
			LabelX: 60, LabelY: 100,
		},
		{
			Name:  "Paint 8-16ft Center",
			Key:   ZoneKey{"In The Paint (Non-RA)", "Center(C)", "8-16 ft."},
			Shape: ShapeRect,
			XMin:  -40, YMin: 70, XMax: 40, YMax: 138,
			LabelX: 0, LabelY: 100,
		},
		{
			Name:  "Mid-Range 8-16ft Left",
			Key:   ZoneKey{"Mid-Range", "Left Side(L)", "8-16 ft."},
			Shape: ShapeRect,
			XMin:  -160, YMin: -44, XMax: -80, YMax: 137,
			LabelX: -120, LabelY: 40,
		},
		{
			Name:  "Mid-Range 8-16ft Right",
			Key:   ZoneKey{"Mid-Range", "Right Side(R)", "8-16 ft."},
			Shape: ShapeRect,
			XMin:  80, YMin: -42, XMax: 160, YMax: 137,
			LabelX: 120, LabelY: 40,
		},
		{
			Name:  "Mid-Range 8-16ft Center",
			Key:   ZoneKey{"Mid-Range", "Center(C)", "8-16 ft."},
			Shape: ShapeRect,
			XMin:  -40, YMin: 139, XMax: 40, YMax: 160,
			LabelX: 0, LabelY: 148,
		},
		{
			Name:  "Mid-Range 16-24ft Left Center",
			Key:   ZoneKey{"Mid-Range", "Left Side Center(LC)", "16-24 ft."},
			Shape: ShapeRect,
			XMin:  -190, YMin: 95, XMax: -80, YMax: 223,
			LabelX: -135, LabelY: 160,
		},
		{
			Name:  "Mid-Range 16-24ft Right Center",
			Key:   ZoneKey{"Mid-Range", "Right Side Center(RC)", "16-24 ft."},
			Shape: ShapeRect,
			XMin:  80, YMin: 95, XMax: 187, YMax: 224,
			LabelX: 135, LabelY: 160,
		},
		{
			Name:  "Mid-Range 16-24ft Center",
			Key:   ZoneKey{"Mid-Range", "Center(C)", "16-24 ft."},
			Shape: ShapeRect,
			XMin:  -70, YMin: 153, XMax: 71, YMax: 237,
			LabelX: 0, LabelY: 190,
		},
		{
			Name:  "Mid-Range 16-24ft Left Side",
			Key:   ZoneKey{"Mid-Range", "Left Side(L)", "16-24 ft."},
			Shape: ShapeRect,
			XMin:  -220, YMin: -39, XMax: -130, YMax: 138,
			LabelX: -175, LabelY: 40,
		},
		{
			Name:  "Mid-Range 16-24ft Right Side",
			Key:   ZoneKey{"Mid-Range", "Right Side(R)", "16-24 ft."},
			Shape: ShapeRect,
			XMin:  130, YMin: -41, XMax: 220, YMax: 139,
			LabelX: 175, LabelY: 40,
		},
		{
			Name:  "3-Point Left Corner",
			Key:   ZoneKey{"Left Corner 3", "Left Side(L)", "24+ ft."},
			Shape: ShapeRect,
			XMin:  -250, YMin: -47.5, XMax: -220, YMax: 87,
			LabelX: -235, LabelY: 20,
		},
		{
			Name:  "3-Point Right Corner",
			Key:   ZoneKey{"Right Corner 3", "Right Side(R)", "24+ ft."},
			Shape: ShapeRect,
			XMin:  220, YMin: -47.5, XMax: 250, YMax: 87,
			LabelX: 235, LabelY: 20,
		},
		{
			Name:  "3-Point Left Wing",
			Key:   ZoneKey{"Above the Break 3", "Left Side Center(LC)", "24+ ft."},
			Shape: ShapePolygon,
			Corners: []Point{
				{-246, 88}, {-74, 88}, {-74, 237}, {-250, 237},
			},
			LabelX: -160, LabelY: 160,
		},
		{
			Name:  "3-Point Right Wing",
			Key:   ZoneKey{"Above the Break 3", "Right Side Center(RC)", "24+ ft."},
			Shape: ShapePolygon,
			Corners: []Point{
				{74, 88}, {248, 88}, {250, 237}, {75, 237},
			},
			LabelX: 160, LabelY: 160,
		},
		{
			Name:  "3-Point Center",
			Key:   ZoneKey{"Above the Break 3", "Center(C)", "24+ ft."},
			Shape: ShapeRect,
			XMin:  -127, YMin: 228, XMax: 113, YMax: 397,
			LabelX: 0, LabelY: 310,
		},
		{
			Name:  "Backcourt",
			Key:   ZoneKey{"Backcourt", "Back Court(BC)", "Back Court Shot"},
			Shape: ShapeRect,
			XMin:  -225, YMin: 398, XMax: 225, YMax: 422.5,
			LabelX: 0, LabelY: 410,
		},
	}
}
