package mention

// Reporter derives display tables from a loaded mention dataset. Every
// method is a full recomputation over the in-memory tables; there is no
// state between render cycles beyond the caller-supplied selection.
type Reporter interface {
	// Window returns the display window the report is configured with.
	Window() Window

	// Brands returns the known brand identifiers in source column order.
	Brands() []string

	// RankBrands returns per-brand totals over the display window,
	// descending, ties in source column order.
	RankBrands() []BrandTotal

	// DefaultSelection returns the top brands by window total, up to the
	// configured selection size.
	DefaultSelection() []string

	// ValidateSelection checks that every selected brand is a known
	// brand column. An empty selection is valid.
	ValidateSelection(selection []string) error

	// Reshape returns tidy rows for the selected brands within the
	// window, ordered brand ascending then date ascending.
	Reshape(selection []string) []TidyRow

	// Series returns one chart series per selected brand, points in
	// natural date order.
	Series(selection []string) []Series

	// TopOverall ranks brands over the entire unfiltered dataset and
	// re-slices the winners within the display window.
	TopOverall() TopOverall
}
