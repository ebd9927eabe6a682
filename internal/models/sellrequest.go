package models

// SellRequest is a "sell my vehicle" lead. Leads are write-only: each
// submission becomes one row in the lead log and is never read back.
type SellRequest struct {
	SellerName         string `json:"sellerName"`
	SellerPhone        string `json:"sellerPhone"`
	SellerEmail        string `json:"sellerEmail"`
	SellerLocation     string `json:"sellerLocation"`
	SellCategory       string `json:"sellCategory"`
	SellBrand          string `json:"sellBrand"`
	SellYear           string `json:"sellYear"`
	SellKM             string `json:"sellKM"`
	SellCondition      string `json:"sellCondition"`
	ExpectedPrice      string `json:"expectedPrice"`
	AdditionalComments string `json:"additionalComments"`
}
