package entity

// CatalogCategory identifica una tabla de referencia de solo lectura.
type CatalogCategory string

const (
	CatalogCompany     CatalogCategory = "company"
	CatalogEPS         CatalogCategory = "eps"
	CatalogARL         CatalogCategory = "arl"
	CatalogCCF         CatalogCategory = "ccf"
	CatalogPensionFund CatalogCategory = "pension_fund"
)

// Label nombre de la categoría para mensajes al usuario.
func (c CatalogCategory) Label() string {
	switch c {
	case CatalogCompany:
		return "Empresa"
	case CatalogEPS:
		return "EPS"
	case CatalogARL:
		return "ARL"
	case CatalogCCF:
		return "CCF"
	case CatalogPensionFund:
		return "Fondo de pensión"
	default:
		return string(c)
	}
}

// CatalogEntry id + nombre único dentro de su categoría.
type CatalogEntry struct {
	ID   int64
	Name string
}
