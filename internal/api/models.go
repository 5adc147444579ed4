package api

// Wire types for the wedding backend. Optional fields are pointers so that
// "unspecified" survives a round trip (absent is not zero).

// WeddingDay is one day of the multi-day event.
type WeddingDay struct {
	ID        int64  `json:"id"`
	DayNumber int    `json:"dayNumber"`
	ThemeName string `json:"themeName"`
	Date      string `json:"date"`
}

// Category groups planning items within a day.
type Category struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"displayOrder"`
}

// DayCategories is the response of GET /api/wedding/days/{id}/categories.
type DayCategories struct {
	DayID        int64      `json:"dayId"`
	DayThemeName string     `json:"dayThemeName"`
	Categories   []Category `json:"categories"`
}

// WeddingItem is a single trackable planning line.
type WeddingItem struct {
	ID                 int64    `json:"id"`
	DayID              int64    `json:"dayId"`
	CategoryID         int64    `json:"categoryId"`
	CategoryName       string   `json:"categoryName"`
	Name               string   `json:"name"`
	VendorName         *string  `json:"vendorName"`
	Notes              *string  `json:"notes"`
	EstimatedCost      *float64 `json:"estimatedCost"`
	DepositPaid        *float64 `json:"depositPaid"`
	OutstandingFees    *float64 `json:"outstandingFees"`
	PercentageComplete *float64 `json:"percentageComplete"`
	AttributesJSON     *string  `json:"attributesJson"`
}

// Auth is the response of both auth endpoints.
type Auth struct {
	Token       string `json:"token"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	DisplayName string `json:"displayName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

// CreateItemRequest creates an item inside a day and category.
type CreateItemRequest struct {
	DayID              int64    `json:"dayId"`
	CategoryID         int64    `json:"categoryId"`
	Name               string   `json:"name"`
	VendorName         *string  `json:"vendorName"`
	Notes              *string  `json:"notes"`
	EstimatedCost      *float64 `json:"estimatedCost"`
	DepositPaid        *float64 `json:"depositPaid"`
	OutstandingFees    *float64 `json:"outstandingFees"`
	PercentageComplete *float64 `json:"percentageComplete"`
	AttributesJSON     *string  `json:"attributesJson"`
}

// UpdateItemRequest updates an item in place. It carries no dayId or
// categoryId: items cannot be moved between day or category via edit.
type UpdateItemRequest struct {
	Name               string   `json:"name"`
	VendorName         *string  `json:"vendorName"`
	Notes              *string  `json:"notes"`
	EstimatedCost      *float64 `json:"estimatedCost"`
	DepositPaid        *float64 `json:"depositPaid"`
	OutstandingFees    *float64 `json:"outstandingFees"`
	PercentageComplete *float64 `json:"percentageComplete"`
	AttributesJSON     *string  `json:"attributesJson"`
}
