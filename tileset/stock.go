package tileset

// stockDefinitions is the shape configuration of the stock game,
// transcribed from its generator tables. The historical editors derived
// record lengths from id-range conditionals scattered through the drawing
// code; here the same facts live in one authored table.
var stockDefinitions = [Count]Definition{
	WorldMap: {
		Name: "World Map",
		Spans: []Span{
			{0x00, 0xFF, Shape{3, AxisNone}},
		},
	},
	Plains: {
		Name: "Plains",
		Spans: []Span{
			{0x00, 0x0F, Shape{3, AxisNone}},
			{0x10, 0x5F, Shape{3, AxisNone}},
			{0x60, 0x7F, Shape{4, AxisWidth}},
			{0x80, 0xBF, Shape{3, AxisNone}},
			{0xC0, 0xDF, Shape{4, AxisHeight}},
			{0xE0, 0xFF, Shape{3, AxisNone}},
		},
	},
	Dungeon: {
		Name: "Dungeon",
		Spans: []Span{
			{0x00, 0x0F, Shape{3, AxisNone}},
			{0x10, 0x2F, Shape{4, AxisWidth}},
			{0x30, 0x5F, Shape{3, AxisNone}},
			{0x60, 0x6F, Shape{4, AxisHeight}},
			{0x70, 0xFF, Shape{3, AxisNone}},
		},
	},
	Hilly: {
		Name: "Hilly",
		Spans: []Span{
			{0x00, 0x0F, Shape{3, AxisNone}},
			{0x10, 0x3F, Shape{3, AxisNone}},
			{0x40, 0x5F, Shape{4, AxisWidth}},
			{0x60, 0x9F, Shape{3, AxisNone}},
			{0xA0, 0xBF, Shape{4, AxisHeight}},
			{0xC0, 0xFF, Shape{3, AxisNone}},
		},
	},
	Sky: {
		Name: "Sky",
		Spans: []Span{
			{0x00, 0x0F, Shape{3, AxisNone}},
			{0x10, 0x4F, Shape{3, AxisNone}},
			{0x50, 0x8F, Shape{4, AxisWidth}},
			{0x90, 0xFF, Shape{3, AxisNone}},
		},
	},
	PiranhaPlant: {
		Name: "Piranha Plant",
		Spans: []Span{
			{0x00, 0xFF, Shape{3, AxisNone}},
		},
	},
	Water: {
		Name: "Water",
		Spans: []Span{
			{0x00, 0x0F, Shape{3, AxisNone}},
			{0x10, 0x3F, Shape{4, AxisWidth}},
			{0x40, 0x7F, Shape{3, AxisNone}},
			{0x80, 0x8F, Shape{4, AxisHeight}},
			{0x90, 0xFF, Shape{3, AxisNone}},
		},
	},
	Mushroom: {
		Name: "Mushroom",
		Spans: []Span{
			{0x00, 0xFF, Shape{3, AxisNone}},
		},
	},
	Pipe: {
		Name: "Pipe",
		Spans: []Span{
			{0x00, 0x0F, Shape{3, AxisNone}},
			{0x10, 0x1F, Shape{4, AxisHeight}},
			{0x20, 0x5F, Shape{3, AxisNone}},
			{0x60, 0x7F, Shape{4, AxisWidth}},
			{0x80, 0xFF, Shape{3, AxisNone}},
		},
	},
	Desert: {
		Name: "Desert",
		Spans: []Span{
			{0x00, 0x0F, Shape{3, AxisNone}},
			{0x10, 0x2F, Shape{3, AxisNone}},
			{0x30, 0x4F, Shape{4, AxisWidth}},
			{0x50, 0xCF, Shape{3, AxisNone}},
			{0xD0, 0xDF, Shape{4, AxisHeight}},
			{0xE0, 0xFF, Shape{3, AxisNone}},
		},
	},
	Airship: {
		Name: "Airship",
		Spans: []Span{
			{0x00, 0x0F, Shape{3, AxisNone}},
			{0x10, 0x5F, Shape{4, AxisWidth}},
			{0x60, 0x8F, Shape{4, AxisHeight}},
			{0x90, 0xFF, Shape{3, AxisNone}},
		},
	},
	Giant: {
		Name: "Giant",
		Spans: []Span{
			{0x00, 0x0F, Shape{3, AxisNone}},
			{0x10, 0x6F, Shape{4, AxisWidth}},
			{0x70, 0xFF, Shape{3, AxisNone}},
		},
	},
}

var stock = mustTable(stockDefinitions)

// Stock returns the shape table of the unmodified game. The table is
// shared, immutable state; callers working on ROM hacks with redefined
// object sets should build their own with NewTable or LoadTable.
func Stock() *Table {
	return stock
}
