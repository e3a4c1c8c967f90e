package styler

// FontFamilies returns the font families offered by the family selector.
// Order matters for display.
func FontFamilies() []string {
	return []string{
		"Arial",
		"Verdana",
		"Helvetica",
		"Times New Roman",
		"Georgia",
		"Courier New",
	}
}

// FontSizes returns the sizes offered by the font-size dropdown.
func FontSizes() []string {
	return []string{
		"12px",
		"14px",
		"16px",
		"18px",
		"20px",
		"24px",
		"28px",
		"32px",
	}
}
