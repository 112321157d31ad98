package dto

// CatalogItem entrada de catálogo.
type CatalogItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ListsResponse respuesta de GET /api/lists.
type ListsResponse struct {
	Eps          []CatalogItem `json:"eps"`
	Arl          []CatalogItem `json:"arl"`
	Ccf          []CatalogItem `json:"ccf"`
	PensionFunds []CatalogItem `json:"pensionFunds"`
	Companies    []CatalogItem `json:"companies"`
}
